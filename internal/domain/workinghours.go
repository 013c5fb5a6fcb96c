package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// WorkingHours рабочие часы тенанта на конкретный день недели
// Инвариант: не более одной записи на пару (tenant, day)
//
// Отсутствие записи на день означает доступность все 24 часа (НЕ "закрыто").
// Запись с StartTime == EndTime трактуется так же, как отсутствие записи
type WorkingHours struct {
	ID                    uuid.UUID
	TenantID              uuid.UUID
	Day                   time.Weekday
	StartTime             types.TimeOfDay
	EndTime               types.TimeOfDay
	MaxConcurrentBookings int // Хранится, но движком доступности не используется

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFullDay возвращает true для вырожденной записи (start == end),
// которая означает круглосуточную доступность
func (w *WorkingHours) IsFullDay() bool {
	return w.StartTime.Equal(w.EndTime)
}

// WindowFor возвращает рабочее окно на конкретную дату
// Для вырожденной записи возвращается полный день 00:00:00-23:59:59
func (w *WorkingHours) WindowFor(date time.Time) (TimeRange, error) {
	if w.IsFullDay() {
		return FullDayWindow(date), nil
	}

	start, err := w.StartTime.At(date)
	if err != nil {
		return TimeRange{}, err
	}

	end, err := w.EndTime.At(date)
	if err != nil {
		return TimeRange{}, err
	}

	return TimeRange{Start: start, End: end}, nil
}

// FullDayWindow возвращает окно 00:00:00-23:59:59 для указанной даты
func FullDayWindow(date time.Time) TimeRange {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
	return TimeRange{Start: start, End: end}
}
