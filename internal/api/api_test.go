package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leotclient/internal/httpclient"
	"leotclient/internal/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func writeEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    0,
		"data":    data,
		"message": "ok",
	})
}

// newTestAPI поднимает поддельный шлюз и собирает модули поверх него.
func newTestAPI(t *testing.T, router *mux.Router) *API {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client := httpclient.NewClient(server.URL, 5*time.Second, staticToken("test-token"), nil, nil)
	return NewAPI(client)
}

func TestUserAPI_Login(t *testing.T) {
	// Arrange
	router := mux.NewRouter()
	router.HandleFunc("/user/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ivan", req.UserName)
		assert.Equal(t, "secret123", req.UserPassword)
		writeEnvelope(w, models.User{ID: 1, UserName: "ivan", UserRole: models.RoleUser})
	}).Methods(http.MethodPost)
	apiSet := newTestAPI(t, router)

	// Act
	user, err := apiSet.User.Login(context.Background(), models.LoginRequest{
		UserName:     "ivan",
		UserPassword: "secret123",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, models.RoleUser, user.UserRole)
}

func TestUserAPI_DeleteUserPassesIDInQuery(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/user/delete", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("id"))
		writeEnvelope(w, true)
	}).Methods(http.MethodDelete)
	apiSet := newTestAPI(t, router)

	ok, err := apiSet.User.DeleteUser(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuestionAPI_GetByID(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/bagu/question/get", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		writeEnvelope(w, models.Question{ID: 7, Title: "Что такое GMP", ThumbNum: 5})
	}).Methods(http.MethodGet)
	apiSet := newTestAPI(t, router)

	question, err := apiSet.Question.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Что такое GMP", question.Title)
	assert.Equal(t, 5, question.ThumbNum)
}

func TestQuestionAPI_ThumbPassesIDInQuery(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/bagu/question/thumb", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("questionId"))
		writeEnvelope(w, true)
	}).Methods(http.MethodPost)
	apiSet := newTestAPI(t, router)

	thumbed, err := apiSet.Question.Thumb(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, thumbed)
}

func TestQuestionAPI_DeleteSendsBody(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/bagu/question/delete", func(w http.ResponseWriter, r *http.Request) {
		var req models.DeleteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(7), req.ID)
		writeEnvelope(w, true)
	}).Methods(http.MethodDelete)
	apiSet := newTestAPI(t, router)

	ok, err := apiSet.Question.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuestionAPI_ListByPage(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/bagu/question/list/page", func(w http.ResponseWriter, r *http.Request) {
		var req models.QueryQuestionDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(2), req.Current)
		writeEnvelope(w, models.Page[models.Question]{
			Records: []models.Question{{ID: 1}, {ID: 2}},
			Total:   12,
		})
	}).Methods(http.MethodPost)
	apiSet := newTestAPI(t, router)

	page, err := apiSet.Question.ListByPage(context.Background(), models.QueryQuestionDTO{Current: 2, PageSize: 2})

	require.NoError(t, err)
	assert.Len(t, page.Records, 2)
	assert.Equal(t, int64(12), page.Total)
}

func TestQuestionBankAPI_Update(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/bagu/questionBank/update", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		writeEnvelope(w, true)
	}).Methods(http.MethodPut)
	apiSet := newTestAPI(t, router)

	ok, err := apiSet.QuestionBank.Update(context.Background(), models.UpdateQuestionBankDTO{ID: 1, Title: "Go"})

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBankQuestionAPI_RemovePassesBothIDs(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/bagu/questionBankQuestion/remove", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("questionBankId"))
		assert.Equal(t, "7", r.URL.Query().Get("questionId"))
		writeEnvelope(w, true)
	}).Methods(http.MethodDelete)
	apiSet := newTestAPI(t, router)

	ok, err := apiSet.BankQuestion.Remove(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCommentAPI_ListByQuestionID(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/bagu/questionComment/list", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("questionId"))
		writeEnvelope(w, []models.QuestionComment{
			{ID: 100, QuestionID: 5, Children: []models.QuestionComment{{ID: 101, ParentID: 100}}},
		})
	}).Methods(http.MethodGet)
	apiSet := newTestAPI(t, router)

	comments, err := apiSet.Comment.ListByQuestionID(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Len(t, comments[0].Children, 1)
	assert.Equal(t, int64(100), comments[0].Children[0].ParentID)
}

func TestFileAPI_UploadImage(t *testing.T) {
	// Arrange
	router := mux.NewRouter()
	router.HandleFunc("/bagu/file/upload/image", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, BizTypeQuestionBank, r.FormValue("bizType"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cover.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))

		writeEnvelope(w, "https://cdn.example.com/questionbank/cover.png")
	}).Methods(http.MethodPost)
	apiSet := newTestAPI(t, router)

	// Act
	url, err := apiSet.File.UploadImage(context.Background(), "cover.png", strings.NewReader("png-bytes"), BizTypeQuestionBank)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/questionbank/cover.png", url)
}
