package clinicapi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound возвращается при 404 от backend
	ErrNotFound = errors.New("clinicapi: record not found")

	// ErrUnexpectedStatus возвращается при любом другом не-2xx ответе
	ErrUnexpectedStatus = errors.New("clinicapi: unexpected status")

	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сеть)
	ErrInternal = errors.New("clinicapi: internal error")

	// ErrInvalidResponse возвращается, когда ответ не соответствует ожидаемой схеме
	ErrInvalidResponse = errors.New("clinicapi: invalid response")
)

// APIError не-2xx ответ backend. Body содержит текст ошибки сервера как есть,
// именно его консоль показывает пользователю
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message())
}

// Message текст для пользователя
func (e *APIError) Message() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return body
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == 404 {
		return ErrNotFound
	}
	return ErrUnexpectedStatus
}

// ServerMessage достает из цепочки ошибок текст сервера, если он есть.
// Иначе возвращает текст самой ошибки
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
