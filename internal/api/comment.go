package api

import (
	"context"
	"fmt"
	"net/http"

	"leotclient/internal/httpclient"
	"leotclient/internal/models"
)

// QuestionCommentAPI - комментарии к вопросам.
type QuestionCommentAPI interface {
	ListByQuestionID(ctx context.Context, questionID int64) ([]models.QuestionComment, error)
	Add(ctx context.Context, req models.AddCommentDTO) (int64, error)
	Reply(ctx context.Context, req models.ReplyCommentDTO) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Thumb(ctx context.Context, commentID int64) (bool, error)
}

type questionCommentAPI struct {
	client *httpclient.Client
}

func NewQuestionCommentAPI(client *httpclient.Client) QuestionCommentAPI {
	return &questionCommentAPI{client: client}
}

func (a *questionCommentAPI) ListByQuestionID(ctx context.Context, questionID int64) ([]models.QuestionComment, error) {
	path := fmt.Sprintf("/bagu/questionComment/list?questionId=%d", questionID)
	return httpclient.Call[[]models.QuestionComment](ctx, a.client, http.MethodGet, path, nil)
}

func (a *questionCommentAPI) Add(ctx context.Context, req models.AddCommentDTO) (int64, error) {
	return httpclient.Call[int64](ctx, a.client, http.MethodPost, "/bagu/questionComment/add", req)
}

func (a *questionCommentAPI) Reply(ctx context.Context, req models.ReplyCommentDTO) (int64, error) {
	return httpclient.Call[int64](ctx, a.client, http.MethodPost, "/bagu/questionComment/reply", req)
}

func (a *questionCommentAPI) Delete(ctx context.Context, id int64) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodDelete, "/bagu/questionComment/delete", models.DeleteRequest{ID: id})
}

// Thumb переключает лайк комментария, сервер возвращает новое состояние.
func (a *questionCommentAPI) Thumb(ctx context.Context, commentID int64) (bool, error) {
	return httpclient.Call[bool](ctx, a.client, http.MethodPost, fmt.Sprintf("/bagu/questionComment/thumb?commentId=%d", commentID), nil)
}
