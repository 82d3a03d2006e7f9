package test

import (
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"

	"leotclient/internal/models"
)

type MockUserAPI struct {
	mock.Mock
}

func (m *MockUserAPI) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserAPI) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserAPI) GetLoginUser(ctx context.Context) (models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserAPI) AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserAPI) DeleteUser(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserAPI) UpdateUserInfo(ctx context.Context, user models.User) (models.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserAPI) ListUsers(ctx context.Context, req models.QueryUserRequest) (models.Page[models.User], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Page[models.User]), args.Error(1)
}

func (m *MockUserAPI) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserAPI) GetSafeUserByID(ctx context.Context, id int64) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

type MockQuestionAPI struct {
	mock.Mock
}

func (m *MockQuestionAPI) GetByID(ctx context.Context, id int64) (models.Question, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Question), args.Error(1)
}

func (m *MockQuestionAPI) ListByPage(ctx context.Context, req models.QueryQuestionDTO) (models.Page[models.Question], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Page[models.Question]), args.Error(1)
}

func (m *MockQuestionAPI) Search(ctx context.Context, req models.SearchParams) (models.Page[models.Question], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Page[models.Question]), args.Error(1)
}

func (m *MockQuestionAPI) Thumb(ctx context.Context, questionID int64) (bool, error) {
	args := m.Called(ctx, questionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestionAPI) Favour(ctx context.Context, questionID int64) (bool, error) {
	args := m.Called(ctx, questionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestionAPI) ListFavour(ctx context.Context, req models.PageParams) (models.Page[models.Question], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Page[models.Question]), args.Error(1)
}

func (m *MockQuestionAPI) Add(ctx context.Context, req models.AddQuestionDTO) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionAPI) Update(ctx context.Context, req models.UpdateQuestionDTO) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestionAPI) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockQuestionBankAPI struct {
	mock.Mock
}

func (m *MockQuestionBankAPI) GetByID(ctx context.Context, id int64) (models.QuestionBank, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.QuestionBank), args.Error(1)
}

func (m *MockQuestionBankAPI) ListByPage(ctx context.Context, req models.QueryQuestionBankDTO) (models.Page[models.QuestionBank], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Page[models.QuestionBank]), args.Error(1)
}

func (m *MockQuestionBankAPI) Add(ctx context.Context, req models.AddQuestionBankDTO) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionBankAPI) Update(ctx context.Context, req models.UpdateQuestionBankDTO) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestionBankAPI) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockBankQuestionAPI struct {
	mock.Mock
}

func (m *MockBankQuestionAPI) Add(ctx context.Context, req models.AddQuestionBankQuestionDTO) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockBankQuestionAPI) BatchAdd(ctx context.Context, req models.BatchAddQuestionDTO) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBankQuestionAPI) Remove(ctx context.Context, questionBankID, questionID int64) (bool, error) {
	args := m.Called(ctx, questionBankID, questionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBankQuestionAPI) ListByBankID(ctx context.Context, questionBankID int64) ([]models.Question, error) {
	args := m.Called(ctx, questionBankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

type MockCommentAPI struct {
	mock.Mock
}

func (m *MockCommentAPI) ListByQuestionID(ctx context.Context, questionID int64) ([]models.QuestionComment, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuestionComment), args.Error(1)
}

func (m *MockCommentAPI) Add(ctx context.Context, req models.AddCommentDTO) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentAPI) Reply(ctx context.Context, req models.ReplyCommentDTO) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentAPI) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentAPI) Thumb(ctx context.Context, commentID int64) (bool, error) {
	args := m.Called(ctx, commentID)
	return args.Bool(0), args.Error(1)
}

type MockFileAPI struct {
	mock.Mock
}

func (m *MockFileAPI) UploadImage(ctx context.Context, fileName string, file io.Reader, bizType string) (string, error) {
	args := m.Called(ctx, fileName, file, bizType)
	return args.String(0), args.Error(1)
}

// RecordingNotifier собирает уведомления для проверок.
type RecordingNotifier struct {
	mu        sync.Mutex
	Successes []string
	Warnings  []string
	Errors    []string
}

func (n *RecordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes = append(n.Successes, message)
}

func (n *RecordingNotifier) Warning(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Warnings = append(n.Warnings, message)
}

func (n *RecordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, message)
}
