package timeblocks

import "errors"

var (
	// ErrTimeBlockNotFound возвращается, когда блокировка времени не найдена
	ErrTimeBlockNotFound = errors.New("time block not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
