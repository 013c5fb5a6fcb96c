package expand_recurrence

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSeriesNotFound возвращается, когда серия повторений не найдена
	ErrSeriesNotFound = errors.New("recurrence series not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
