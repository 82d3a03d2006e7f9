package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource отдаёт текущий токен сессии. Пустая строка - не авторизован.
// Клиент не лезет в хранилище сам, источник токена внедряется снаружи.
type TokenSource interface {
	Token() string
}

// Envelope - конверт каждого ответа шлюза. code 0 или 200 - успех.
type Envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (e *Envelope) OK() bool {
	return e.Code == 0 || e.Code == 200
}

// Client - обёртка над http.Client: подставляет токен в Authorization,
// держит индикатор загрузки и разворачивает конверт ответа.
type Client struct {
	http           *http.Client
	baseURL        string
	tokens         TokenSource
	loading        *LoadingGauge
	onUnauthorized func()
	onToken        func(token string)
}

// NewClient создаёт обёртку. onUnauthorized вызывается на любой 401
// (сессия должна быть сброшена, навигация - на страницу входа); может быть nil.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, loading *LoadingGauge, onUnauthorized func()) *Client {
	if loading == nil {
		loading = NewLoadingGauge(nil)
	}
	return &Client{
		http:           &http.Client{Timeout: timeout},
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		tokens:         tokens,
		loading:        loading,
		onUnauthorized: onUnauthorized,
	}
}

func (c *Client) Loading() *LoadingGauge {
	return c.loading
}

// OnToken регистрирует приёмник токена: шлюз выдаёт токен сессии
// в заголовке satoken ответа на вход/регистрацию.
func (c *Client) OnToken(fn func(token string)) {
	c.onToken = fn
}

// Do выполняет запрос и возвращает поле data конверта.
// body != nil сериализуется в JSON.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

// DoMultipart отправляет файл полем file плюс поле bizType
// (загрузка изображений на шлюз).
func (c *Client) DoMultipart(ctx context.Context, path string, fileName string, file io.Reader, bizType string) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("ошибка подготовки файла: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if err := writer.WriteField("bizType", bizType); err != nil {
		return nil, fmt.Errorf("ошибка подготовки файла: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("ошибка подготовки файла: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req)
}

// send - общий путь: заголовки, индикатор, классификация ответа.
// Индикатор освобождается на каждом пути выхода.
func (c *Client) send(req *http.Request) (json.RawMessage, error) {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)

	c.loading.Acquire()
	defer c.loading.Release()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if token := resp.Header.Get("satoken"); token != "" && c.onToken != nil {
		c.onToken(token)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		log.Printf("[httpclient] 401 на %s %s (request %s), сессия будет сброшена", req.Method, req.URL.Path, requestID)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrForbidden)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrNotFound)
	case resp.StatusCode >= 500:
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: extractMessage(respBody)}
	}

	var env Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("неожиданный формат ответа сервера: %w", err)
	}
	if !env.OK() {
		return nil, &BusinessError{Code: env.Code, Message: env.Message}
	}

	return env.Data, nil
}

// extractMessage пытается достать message из тела 5xx-ответа.
func extractMessage(body []byte) string {
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return ""
}

// Call выполняет запрос и десериализует data в T.
// data == null отдаёт нулевое значение T (у части ручек data пустой).
func Call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T

	raw, err := c.Do(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("ошибка разбора ответа %s: %w", path, err)
	}
	return out, nil
}
