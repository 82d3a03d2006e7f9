package api

import (
	"leotclient/internal/httpclient"
)

// API собирает все модули ресурсов шлюза.
type API struct {
	User         UserAPI
	Question     QuestionAPI
	QuestionBank QuestionBankAPI
	BankQuestion QuestionBankQuestionAPI
	Comment      QuestionCommentAPI
	File         FileAPI
}

func NewAPI(client *httpclient.Client) *API {
	return &API{
		User:         NewUserAPI(client),
		Question:     NewQuestionAPI(client),
		QuestionBank: NewQuestionBankAPI(client),
		BankQuestion: NewQuestionBankQuestionAPI(client),
		Comment:      NewQuestionCommentAPI(client),
		File:         NewFileAPI(client),
	}
}
