package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"leotclient/internal/httpclient"
)

// BizTypeQuestionBank - тип загрузки по умолчанию (обложки банков).
const BizTypeQuestionBank = "questionbank"

type FileAPI interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, bizType string) (string, error)
}

type fileAPI struct {
	client *httpclient.Client
}

func NewFileAPI(client *httpclient.Client) FileAPI {
	return &fileAPI{client: client}
}

// UploadImage загружает картинку на шлюз и возвращает её URL.
func (a *fileAPI) UploadImage(ctx context.Context, fileName string, file io.Reader, bizType string) (string, error) {
	if bizType == "" {
		bizType = BizTypeQuestionBank
	}

	raw, err := a.client.DoMultipart(ctx, "/bagu/file/upload/image", fileName, file, bizType)
	if err != nil {
		return "", err
	}

	var url string
	if err := json.Unmarshal(raw, &url); err != nil {
		return "", fmt.Errorf("ошибка разбора ответа загрузки: %w", err)
	}
	return url, nil
}
