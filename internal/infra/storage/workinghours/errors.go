package workinghours

import "errors"

var (
	// ErrWorkingHoursNotFound возвращается, когда запись рабочих часов не найдена
	ErrWorkingHoursNotFound = errors.New("workinghours.repository: working hours not found")

	// ErrDuplicateDay возвращается при попытке создать вторую запись
	// на ту же пару (tenant, day)
	ErrDuplicateDay = errors.New("workinghours.repository: working hours for this day already exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workinghours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workinghours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workinghours.repository: failed to scan row")
)
