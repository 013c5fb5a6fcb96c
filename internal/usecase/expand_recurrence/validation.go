package expand_recurrence

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует базовую блокировку и паттерн повторения
func validateRequest(req *Request, now time.Time) error {
	errs := domain.ValidationErrors{}

	if req.TenantID == uuid.Nil {
		errs.Add("tenantId", "tenantId is required")
	}

	if req.StartDateTime.IsZero() || req.EndDateTime.IsZero() {
		errs.Add("startDateTime", "startDateTime and endDateTime are required")
	} else if !req.StartDateTime.Before(req.EndDateTime) {
		errs.Add("startDateTime", "startDateTime must be before endDateTime")
	}

	if _, err := domain.ParseTimeBlockType(string(req.Type)); err != nil {
		errs.Add("type", "type must be one of: vacation, break, custom")
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		errs.Add("reason", "reason must not exceed %d characters", domain.MaxReasonLength)
	}

	validatePattern(&errs, req.StartDateTime, req.Pattern, now)

	if errs.HasErrors() {
		// Оборачиваем сентинелом, чтобы handlers различали ошибку по errors.Is,
		// сохраняя список ошибок полей через errors.As
		return fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}
	return nil
}

// validatePattern проверяет согласованность паттерна с базовой блокировкой
func validatePattern(errs *domain.ValidationErrors, baseStart time.Time, p domain.RecurrencePattern, now time.Time) {
	switch p.Frequency {
	case domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyMonthly:
	default:
		errs.Add("pattern.frequency", "frequency must be one of: daily, weekly, monthly")
		return
	}

	if p.Interval < 1 {
		errs.Add("pattern.interval", "interval must be at least 1")
	}

	// Условие завершения: ровно одно из двух
	switch {
	case p.EndDate == nil && p.MaxOccurrences == nil:
		errs.Add("pattern.endDate", "either endDate or maxOccurrences must be set")
	case p.EndDate != nil && p.MaxOccurrences != nil:
		errs.Add("pattern.endDate", "endDate and maxOccurrences are mutually exclusive")
	}

	if p.EndDate != nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if p.EndDate.Before(today) {
			errs.Add("pattern.endDate", "endDate cannot be in the past")
		}
	}

	if p.MaxOccurrences != nil && *p.MaxOccurrences <= 0 {
		errs.Add("pattern.maxOccurrences", "maxOccurrences must be positive")
	}

	switch p.Frequency {
	case domain.FrequencyDaily:
		if p.HasDaysOfWeek() {
			errs.Add("pattern.daysOfWeek", "daysOfWeek is not allowed for daily frequency")
		}
		if p.HasDaysOfMonth() {
			errs.Add("pattern.daysOfMonth", "daysOfMonth is not allowed for daily frequency")
		}

	case domain.FrequencyWeekly:
		if p.HasDaysOfMonth() {
			errs.Add("pattern.daysOfMonth", "daysOfMonth is not allowed for weekly frequency")
		}
		validateDaysOfWeek(errs, baseStart, p.DaysOfWeek)

	case domain.FrequencyMonthly:
		if p.HasDaysOfWeek() {
			errs.Add("pattern.daysOfWeek", "daysOfWeek is not allowed for monthly frequency")
		}
		validateDaysOfMonth(errs, baseStart, p.DaysOfMonth)
	}
}

func validateDaysOfWeek(errs *domain.ValidationErrors, baseStart time.Time, days []time.Weekday) {
	if len(days) == 0 {
		errs.Add("pattern.daysOfWeek", "daysOfWeek is required for weekly frequency")
		return
	}

	seen := make(map[time.Weekday]bool, len(days))
	baseIncluded := false

	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			errs.Add("pattern.daysOfWeek", "day of week %d is out of range [0, 6]", int(d))
			continue
		}
		if seen[d] {
			errs.Add("pattern.daysOfWeek", "duplicate day of week: %s", d)
			continue
		}
		seen[d] = true

		if d == baseStart.Weekday() {
			baseIncluded = true
		}
	}

	if !baseIncluded {
		errs.Add("pattern.daysOfWeek", "daysOfWeek must include the weekday of the base block (%s)", baseStart.Weekday())
	}
}

func validateDaysOfMonth(errs *domain.ValidationErrors, baseStart time.Time, days []int) {
	if len(days) == 0 {
		errs.Add("pattern.daysOfMonth", "daysOfMonth is required for monthly frequency")
		return
	}

	dim := daysInMonth(baseStart)
	baseDay := baseStart.Day()
	baseIncluded := false

	for _, d := range days {
		if d == 0 || d > domain.MaxDayOfMonth || d < domain.MinDayOfMonth {
			errs.Add("pattern.daysOfMonth", "day of month %d is out of range [-31, 31]", d)
			continue
		}
		// С конца месяца поддерживаются только последний, предпоследний
		// и третий с конца дни
		if d > domain.MinDayOfMonth && d < -1 && d != -2 && d != -3 {
			errs.Add("pattern.daysOfMonth", "negative day of month %d is not supported, use -1, -2 or -3", d)
			continue
		}

		if resolveDayOfMonth(d, dim) == baseDay {
			baseIncluded = true
		}
	}

	if !baseIncluded {
		errs.Add("pattern.daysOfMonth", "daysOfMonth must include the day of the base block (%d)", baseDay)
	}
}
