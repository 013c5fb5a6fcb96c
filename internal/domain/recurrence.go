package domain

import (
	"fmt"
	"time"
)

// RecurrenceFrequency частота повторения блокировки
type RecurrenceFrequency string

const (
	FrequencyDaily   RecurrenceFrequency = "daily"
	FrequencyWeekly  RecurrenceFrequency = "weekly"
	FrequencyMonthly RecurrenceFrequency = "monthly"
)

// ParseRecurrenceFrequency парсит строковое представление частоты
func ParseRecurrenceFrequency(s string) (RecurrenceFrequency, error) {
	switch RecurrenceFrequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return RecurrenceFrequency(s), nil
	default:
		return "", fmt.Errorf("unknown recurrence frequency: %q", s)
	}
}

// RecurrencePattern паттерн повторения блокировки времени
// Не персистится как отдельная сущность: сразу разворачивается в записи TimeBlock
//
// Инварианты:
//   - Interval >= 1
//   - задано ровно одно из условий завершения: EndDate или MaxOccurrences
//   - DaysOfWeek только для Weekly, DaysOfMonth только для Monthly
//   - селекторы дней обязаны включать день базового вхождения
type RecurrencePattern struct {
	Frequency RecurrenceFrequency
	Interval  int // Каждые N дней/недель/месяцев

	// Для Weekly: дни недели (0=воскресенье ... 6=суббота)
	DaysOfWeek []time.Weekday

	// Для Monthly: дни месяца (1..31, либо -1 для последнего дня,
	// -2 для предпоследнего, -3 для третьего с конца)
	DaysOfMonth []int

	// Условие завершения: ровно одно из двух
	EndDate        *time.Time
	MaxOccurrences *int
}

// HasDaysOfWeek возвращает true, если заданы селекторы дней недели
func (p *RecurrencePattern) HasDaysOfWeek() bool {
	return len(p.DaysOfWeek) > 0
}

// HasDaysOfMonth возвращает true, если заданы селекторы дней месяца
func (p *RecurrencePattern) HasDaysOfMonth() bool {
	return len(p.DaysOfMonth) > 0
}

// EffectiveEndDate возвращает конечную границу генерации:
// EndDate паттерна, либо baseStart + 2 года, если паттерн ограничен
// только количеством вхождений
func (p *RecurrencePattern) EffectiveEndDate(baseStart time.Time) time.Time {
	if p.EndDate != nil {
		return *p.EndDate
	}
	return baseStart.AddDate(DefaultRecurrenceHorizonYears, 0, 0)
}
