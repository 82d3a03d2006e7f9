package api

import (
	"context"
	"fmt"
	"net/http"

	"leotclient/internal/httpclient"
	"leotclient/internal/models"
)

type UserAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	GetLoginUser(ctx context.Context) (models.User, error)
	Logout(ctx context.Context) error
	AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	UpdateUserInfo(ctx context.Context, user models.User) (models.User, error)
	ListUsers(ctx context.Context, req models.QueryUserRequest) (models.Page[models.User], error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetSafeUserByID(ctx context.Context, id int64) (models.User, error)
}

type userAPI struct {
	client *httpclient.Client
}

func NewUserAPI(client *httpclient.Client) UserAPI {
	return &userAPI{client: client}
}

func (a *userAPI) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return httpclient.Call[models.User](ctx, a.client, http.MethodPost, "/user/login", req)
}

func (a *userAPI) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return httpclient.Call[models.User](ctx, a.client, http.MethodPost, "/user/register", req)
}

func (a *userAPI) GetLoginUser(ctx context.Context) (models.User, error) {
	return httpclient.Call[models.User](ctx, a.client, http.MethodGet, "/user/get/loginuser", nil)
}

func (a *userAPI) Logout(ctx context.Context) error {
	_, err := a.client.Do(ctx, http.MethodPost, "/user/logout", nil)
	return err
}

func (a *userAPI) AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return httpclient.Call[models.User](ctx, a.client, http.MethodPost, "/user/add", req)
}

func (a *userAPI) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodDelete, fmt.Sprintf("/user/delete?id=%d", id), nil)
}

func (a *userAPI) UpdateUserInfo(ctx context.Context, user models.User) (models.User, error) {
	return httpclient.Call[models.User](ctx, a.client, http.MethodPut, "/user/updateuserinfo", user)
}

func (a *userAPI) ListUsers(ctx context.Context, req models.QueryUserRequest) (models.Page[models.User], error) {
	return httpclient.Call[models.Page[models.User]](ctx, a.client, http.MethodPost, "/user/list", req)
}

func (a *userAPI) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return httpclient.Call[models.User](ctx, a.client, http.MethodGet, fmt.Sprintf("/user/getone/%d", id), nil)
}

// GetSafeUserByID - вариант для обычных пользователей, сервер отдаёт
// профиль без чувствительных полей.
func (a *userAPI) GetSafeUserByID(ctx context.Context, id int64) (models.User, error) {
	body := struct {
		ID int64 `json:"id"`
	}{ID: id}
	return httpclient.Call[models.User](ctx, a.client, http.MethodPost, "/user/getone/safe", body)
}
