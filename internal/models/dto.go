package models

// Запросы к шлюзу. Тэги validate проверяются на границе CLI,
// API-модули сами ничего не валидируют.

type LoginRequest struct {
	UserName     string `json:"userName" validate:"required"`
	UserPassword string `json:"userPassword" validate:"required,min=8"`
}

type RegisterRequest struct {
	UserName     string `json:"userName" validate:"required,min=2"`
	UserPassword string `json:"userPassword" validate:"required,min=8"`
	Profile      string `json:"profile,omitempty"`
}

type QueryUserRequest struct {
	Current     int64  `json:"current" validate:"min=1"`
	PageSize    int64  `json:"pageSize" validate:"min=1,max=100"`
	UserName    string `json:"userName,omitempty"`
	UserAccount string `json:"userAccount,omitempty"`
}

type PageParams struct {
	Current  int64 `json:"current" validate:"min=1"`
	PageSize int64 `json:"pageSize" validate:"min=1,max=100"`
}

type QueryQuestionDTO struct {
	Current        int64    `json:"current" validate:"min=1"`
	PageSize       int64    `json:"pageSize" validate:"min=1,max=100"`
	QuestionBankID int64    `json:"questionBankId,omitempty"`
	Title          string   `json:"title,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

type SearchParams struct {
	Keyword        string   `json:"keyword,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	QuestionBankID int64    `json:"questionBankId,omitempty"`
	SortField      string   `json:"sortField,omitempty"`
	SortOrder      string   `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
	Current        int64    `json:"current" validate:"min=1"`
	PageSize       int64    `json:"pageSize" validate:"min=1,max=100"`
}

type AddQuestionDTO struct {
	Title          string   `json:"title" validate:"required"`
	Content        string   `json:"content" validate:"required"`
	Answer         string   `json:"answer,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	QuestionBankID int64    `json:"questionBankId,omitempty"`
}

type UpdateQuestionDTO struct {
	ID      int64    `json:"id" validate:"required"`
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Answer  string   `json:"answer,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

type QueryQuestionBankDTO struct {
	Current  int64  `json:"current" validate:"min=1"`
	PageSize int64  `json:"pageSize" validate:"min=1,max=100"`
	Title    string `json:"title,omitempty"`
}

type AddQuestionBankDTO struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Picture     string `json:"picture,omitempty"`
}

type UpdateQuestionBankDTO struct {
	ID          int64  `json:"id" validate:"required"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Picture     string `json:"picture,omitempty"`
}

type AddQuestionBankQuestionDTO struct {
	QuestionBankID int64 `json:"questionBankId" validate:"required"`
	QuestionID     int64 `json:"questionId" validate:"required"`
}

type BatchAddQuestionDTO struct {
	QuestionBankID int64   `json:"questionBankId" validate:"required"`
	QuestionIDs    []int64 `json:"questionIds" validate:"required,min=1"`
}

type AddCommentDTO struct {
	QuestionID int64  `json:"questionId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

type ReplyCommentDTO struct {
	QuestionID  int64  `json:"questionId" validate:"required"`
	ParentID    int64  `json:"parentId" validate:"required"`
	ReplyUserID int64  `json:"replyUserId,omitempty"`
	Content     string `json:"content" validate:"required"`
}

// DeleteRequest - общий запрос удаления по id (тело DELETE-запросов шлюза).
type DeleteRequest struct {
	ID int64 `json:"id" validate:"required"`
}
