package domain

// Time format constants
const (
	TimeFormat     = "15:04:05"            // HH:MM:SS
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // ISO 8601 без зоны (все значения уже нормализованы к UTC)
)

// Recurrence constants
const (
	// DefaultRecurrenceHorizonYears горизонт генерации повторений,
	// когда паттерн ограничен только количеством вхождений
	DefaultRecurrenceHorizonYears = 2

	MinDayOfMonth = -31
	MaxDayOfMonth = 31
)

// Buffer validation constants
const (
	MinBufferMinutes = 0
	MaxBufferMinutes = 480 // 8 часов
)

// Pagination constants
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// MaxReasonLength максимальная длина причины блокировки времени
const MaxReasonLength = 500
