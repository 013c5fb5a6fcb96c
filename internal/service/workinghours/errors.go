package workinghours

import "errors"

var (
	// ErrWorkingHoursNotFound возвращается, когда запись рабочих часов не найдена
	ErrWorkingHoursNotFound = errors.New("working hours not found")

	// ErrDuplicateDay возвращается, когда рабочие часы на день уже заданы
	ErrDuplicateDay = errors.New("working hours for this day already exist")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
