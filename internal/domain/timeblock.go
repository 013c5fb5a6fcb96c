package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// TimeBlockType тип блокировки времени
type TimeBlockType string

const (
	BlockTypeVacation TimeBlockType = "vacation"
	BlockTypeBreak    TimeBlockType = "break"
	BlockTypeCustom   TimeBlockType = "custom"
)

// ParseTimeBlockType парсит строковое представление типа блокировки
func ParseTimeBlockType(s string) (TimeBlockType, error) {
	switch TimeBlockType(s) {
	case BlockTypeVacation, BlockTypeBreak, BlockTypeCustom:
		return TimeBlockType(s), nil
	default:
		return "", fmt.Errorf("unknown time block type: %q", s)
	}
}

// TimeBlock период недоступности тенанта (отпуск, перерыв и т.д.)
// Инвариант: StartDateTime < EndDateTime
//
// RecurrenceID == nil для одиночных блокировок; для повторяющихся серий
// все вхождения (включая исходно созданное) делят один RecurrenceID
type TimeBlock struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	StartDateTime time.Time
	EndDateTime   time.Time
	Type          TimeBlockType
	Reason        *string
	RecurrenceID  *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRecurring возвращает true для блокировок, входящих в повторяющуюся серию
func (b *TimeBlock) IsRecurring() bool {
	return b.RecurrenceID != nil
}

// Range возвращает интервал блокировки
func (b *TimeBlock) Range() TimeRange {
	return TimeRange{Start: b.StartDateTime, End: b.EndDateTime}
}

// TimeBlockPatch частичное обновление блокировки
// Изменение времени задается временем суток: при применении к серии
// каждое вхождение сохраняет собственную дату
type TimeBlockPatch struct {
	StartTime *types.TimeOfDay
	EndTime   *types.TimeOfDay
	Type      *TimeBlockType
	Reason    *string
}

// IsEmpty возвращает true, если патч не содержит изменений
func (p TimeBlockPatch) IsEmpty() bool {
	return p.StartTime == nil && p.EndTime == nil && p.Type == nil && p.Reason == nil
}

// Apply применяет патч к неизменяемому снимку блокировки и возвращает новую запись
// Запись в хранилище - отдельный явный вызов
func (p TimeBlockPatch) Apply(block TimeBlock) (TimeBlock, error) {
	updated := block

	if p.StartTime != nil {
		start, err := p.StartTime.At(block.StartDateTime)
		if err != nil {
			return TimeBlock{}, err
		}
		updated.StartDateTime = start
	}

	if p.EndTime != nil {
		end, err := p.EndTime.At(block.EndDateTime)
		if err != nil {
			return TimeBlock{}, err
		}
		updated.EndDateTime = end
	}

	if p.Type != nil {
		updated.Type = *p.Type
	}

	if p.Reason != nil {
		updated.Reason = p.Reason
	}

	return updated, nil
}

// DateRange период дат для фильтрации запросов к хранилищу
type DateRange struct {
	Start time.Time
	End   time.Time
}
