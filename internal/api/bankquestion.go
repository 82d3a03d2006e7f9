package api

import (
	"context"
	"fmt"
	"net/http"

	"leotclient/internal/httpclient"
	"leotclient/internal/models"
)

// QuestionBankQuestionAPI - связи банк-вопрос (многие ко многим).
type QuestionBankQuestionAPI interface {
	Add(ctx context.Context, req models.AddQuestionBankQuestionDTO) (bool, error)
	BatchAdd(ctx context.Context, req models.BatchAddQuestionDTO) (int64, error)
	Remove(ctx context.Context, questionBankID, questionID int64) (bool, error)
	ListByBankID(ctx context.Context, questionBankID int64) ([]models.Question, error)
}

type questionBankQuestionAPI struct {
	client *httpclient.Client
}

func NewQuestionBankQuestionAPI(client *httpclient.Client) QuestionBankQuestionAPI {
	return &questionBankQuestionAPI{client: client}
}

func (a *questionBankQuestionAPI) Add(ctx context.Context, req models.AddQuestionBankQuestionDTO) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodPost, "/bagu/questionBankQuestion/add", req)
}

// BatchAdd возвращает число реально привязанных вопросов.
func (a *questionBankQuestionAPI) BatchAdd(ctx context.Context, req models.BatchAddQuestionDTO) (int64, error) {
	return httpclient.Call[int64](ctx, a.client, http.MethodPost, "/bagu/questionBankQuestion/add/batch", req)
}

func (a *questionBankQuestionAPI) Remove(ctx context.Context, questionBankID, questionID int64) (bool, error) {
	path := fmt.Sprintf("/bagu/questionBankQuestion/remove?questionBankId=%d&questionId=%d", questionBankID, questionID)
	return httpclient.Call[bool](ctx, a.client, http.MethodDelete, path, nil)
}

func (a *questionBankQuestionAPI) ListByBankID(ctx context.Context, questionBankID int64) ([]models.Question, error) {
	path := fmt.Sprintf("/bagu/questionBankQuestion/list?questionBankId=%d", questionBankID)
	return httpclient.Call[[]models.Question](ctx, a.client, http.MethodGet, path, nil)
}
