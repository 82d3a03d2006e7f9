package httpclient

import (
	"errors"
	"fmt"
)

// Ошибки транспортного уровня по статусу ответа. Бизнес-ошибки
// (ненулевой code в конверте) - отдельный тип BusinessError.
var (
	ErrUnauthorized = errors.New("не авторизован, требуется повторный вход")
	ErrForbidden    = errors.New("доступ запрещен")
	ErrNotFound     = errors.New("ресурс не найден")
)

// TransportError - запрос вообще не дошёл до сервера (сеть, таймаут).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("сетевая ошибка, проверьте подключение: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError - ответ 5xx; Message - сообщение из тела ответа,
// если сервер его прислал, иначе общее.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ошибка сервера (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("ошибка сервера (%d)", e.StatusCode)
}

// BusinessError - сервер ответил, но code в конверте не 0 и не 200.
// Message передаётся дословно, вызывающий сам решает, показывать ли его.
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("запрос отклонён сервером (code %d)", e.Code)
	}
	return e.Message
}
