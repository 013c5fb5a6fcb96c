package domain

import (
	"fmt"
	"strings"
)

// FieldError ошибка валидации конкретного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors набор ошибок валидации запроса
// Накапливаем все ошибки сразу, чтобы клиент не ходил по одной
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors возвращает true, если набор не пуст
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Add добавляет ошибку поля в набор
func (e *ValidationErrors) Add(field, format string, v ...interface{}) {
	*e = append(*e, FieldError{Field: field, Message: fmt.Sprintf(format, v...)})
}
