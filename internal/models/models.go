package models

// User - учётная запись на платформе. Пароль никогда не приходит обратно
// с сервера, поле заполняется только при регистрации/обновлении.
type User struct {
	ID           int64  `json:"id,omitempty"`
	UserName     string `json:"userName"`
	UserAccount  string `json:"userAccount,omitempty"`
	UserPassword string `json:"userPassword,omitempty"`
	Profile      string `json:"profile,omitempty"`
	UserRole     string `json:"userRole"`
	CreateTime   string `json:"createTime,omitempty"`
	UpdateTime   string `json:"updateTime,omitempty"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Question - вопрос из банка вопросов. HasThumb/HasFavour относятся к
// текущему пользователю и должны меняться строго вместе со счётчиками.
type Question struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Answer     string   `json:"answer,omitempty"`
	Tags       []string `json:"tags"`
	UserID     int64    `json:"userId"`
	UserName   string   `json:"userName,omitempty"`
	ViewNum    int      `json:"viewNum"`
	ThumbNum   int      `json:"thumbNum"`
	FavourNum  int      `json:"favourNum"`
	HasThumb   bool     `json:"hasThumb,omitempty"`
	HasFavour  bool     `json:"hasFavour,omitempty"`
	CreateTime string   `json:"createTime,omitempty"`
	UpdateTime string   `json:"updateTime,omitempty"`
}

type QuestionBank struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Picture       string `json:"picture,omitempty"`
	UserID        int64  `json:"userId"`
	UserName      string `json:"userName,omitempty"`
	QuestionCount int    `json:"questionCount,omitempty"`
	CreateTime    string `json:"createTime,omitempty"`
	UpdateTime    string `json:"updateTime,omitempty"`
}

// QuestionComment - комментарий к вопросу, двухуровневое дерево:
// корневые комментарии с ответами в Children.
type QuestionComment struct {
	ID            int64             `json:"id"`
	QuestionID    int64             `json:"questionId"`
	UserID        int64             `json:"userId"`
	UserName      string            `json:"userName,omitempty"`
	UserAvatar    string            `json:"userAvatar,omitempty"`
	ParentID      int64             `json:"parentId,omitempty"`
	ReplyUserID   int64             `json:"replyUserId,omitempty"`
	ReplyUserName string            `json:"replyUserName,omitempty"`
	Content       string            `json:"content"`
	ThumbNum      int               `json:"thumbNum"`
	HasThumb      bool              `json:"hasThumb,omitempty"`
	CreateTime    string            `json:"createTime,omitempty"`
	Children      []QuestionComment `json:"children,omitempty"`
}

// Page - страница результатов, целиком посчитанная сервером.
// Клиент никогда не пересчитывает total и границы страниц.
type Page[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
	Current int64 `json:"current"`
	Size    int64 `json:"size"`
	Pages   int64 `json:"pages,omitempty"`
}
