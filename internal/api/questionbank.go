package api

import (
	"context"
	"fmt"
	"net/http"

	"leotclient/internal/httpclient"
	"leotclient/internal/models"
)

type QuestionBankAPI interface {
	GetByID(ctx context.Context, id int64) (models.QuestionBank, error)
	ListByPage(ctx context.Context, req models.QueryQuestionBankDTO) (models.Page[models.QuestionBank], error)
	Add(ctx context.Context, req models.AddQuestionBankDTO) (int64, error)
	Update(ctx context.Context, req models.UpdateQuestionBankDTO) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type questionBankAPI struct {
	client *httpclient.Client
}

func NewQuestionBankAPI(client *httpclient.Client) QuestionBankAPI {
	return &questionBankAPI{client: client}
}

func (a *questionBankAPI) GetByID(ctx context.Context, id int64) (models.QuestionBank, error) {
	return httpclient.Call[models.QuestionBank](ctx, a.client, http.MethodGet, fmt.Sprintf("/bagu/questionBank/get?id=%d", id), nil)
}

func (a *questionBankAPI) ListByPage(ctx context.Context, req models.QueryQuestionBankDTO) (models.Page[models.QuestionBank], error) {
	return httpclient.Call[models.Page[models.QuestionBank]](ctx, a.client, http.MethodPost, "/bagu/questionBank/list/page", req)
}

func (a *questionBankAPI) Add(ctx context.Context, req models.AddQuestionBankDTO) (int64, error) {
	return httpclient.Call[int64](ctx, a.client, http.MethodPost, "/bagu/questionBank/add", req)
}

func (a *questionBankAPI) Update(ctx context.Context, req models.UpdateQuestionBankDTO) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodPut, "/bagu/questionBank/update", req)
}

func (a *questionBankAPI) Delete(ctx context.Context, id int64) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodDelete, "/bagu/questionBank/delete", models.DeleteRequest{ID: id})
}
