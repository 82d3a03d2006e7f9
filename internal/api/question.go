package api

import (
	"context"
	"fmt"
	"net/http"

	"leotclient/internal/httpclient"
	"leotclient/internal/models"
)

type QuestionAPI interface {
	GetByID(ctx context.Context, id int64) (models.Question, error)
	ListByPage(ctx context.Context, req models.QueryQuestionDTO) (models.Page[models.Question], error)
	Search(ctx context.Context, req models.SearchParams) (models.Page[models.Question], error)
	Thumb(ctx context.Context, questionID int64) (bool, error)
	Favour(ctx context.Context, questionID int64) (bool, error)
	ListFavour(ctx context.Context, req models.PageParams) (models.Page[models.Question], error)
	Add(ctx context.Context, req models.AddQuestionDTO) (int64, error)
	Update(ctx context.Context, req models.UpdateQuestionDTO) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type questionAPI struct {
	client *httpclient.Client
}

func NewQuestionAPI(client *httpclient.Client) QuestionAPI {
	return &questionAPI{client: client}
}

func (a *questionAPI) GetByID(ctx context.Context, id int64) (models.Question, error) {
	return httpclient.Call[models.Question](ctx, a.client, http.MethodGet, fmt.Sprintf("/bagu/question/get?id=%d", id), nil)
}

func (a *questionAPI) ListByPage(ctx context.Context, req models.QueryQuestionDTO) (models.Page[models.Question], error) {
	return httpclient.Call[models.Page[models.Question]](ctx, a.client, http.MethodPost, "/bagu/question/list/page", req)
}

func (a *questionAPI) Search(ctx context.Context, req models.SearchParams) (models.Page[models.Question], error) {
	return httpclient.Call[models.Page[models.Question]](ctx, a.client, http.MethodPost, "/bagu/question/search", req)
}

// Thumb переключает лайк, сервер возвращает новое состояние.
func (a *questionAPI) Thumb(ctx context.Context, questionID int64) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodPost, fmt.Sprintf("/bagu/question/thumb?questionId=%d", questionID), nil)
}

// Favour переключает избранное, сервер возвращает новое состояние.
func (a *questionAPI) Favour(ctx context.Context, questionID int64) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodPost, fmt.Sprintf("/bagu/question/favour?questionId=%d", questionID), nil)
}

func (a *questionAPI) ListFavour(ctx context.Context, req models.PageParams) (models.Page[models.Question], error) {
	return httpclient.Call[models.Page[models.Question]](ctx, a.client, http.MethodPost, "/bagu/question/favour/list", req)
}

func (a *questionAPI) Add(ctx context.Context, req models.AddQuestionDTO) (int64, error) {
	return httpclient.Call[int64](ctx, a.client, http.MethodPost, "/bagu/question/add", req)
}

func (a *questionAPI) Update(ctx context.Context, req models.UpdateQuestionDTO) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodPut, "/bagu/question/update", req)
}

func (a *questionAPI) Delete(ctx context.Context, id int64) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodDelete, "/bagu/question/delete", models.DeleteRequest{ID: id})
}
