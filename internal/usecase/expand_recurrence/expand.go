package expand_recurrence

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// expandOccurrences разворачивает паттерн в дополнительные вхождения серии
// Базовая блокировка в результат не входит: она создается клиентом паттерна
// Результат отсортирован по началу и ограничен бюджетом MaxOccurrences
func expandOccurrences(baseStart, baseEnd time.Time, p domain.RecurrencePattern) []domain.TimeRange {
	duration := baseEnd.Sub(baseStart)
	endBound := p.EffectiveEndDate(baseStart)

	var starts []time.Time

	switch p.Frequency {
	case domain.FrequencyDaily:
		starts = expandDaily(baseStart, p.Interval, endBound)
	case domain.FrequencyWeekly:
		starts = expandWeekly(baseStart, p, endBound)
	case domain.FrequencyMonthly:
		starts = expandMonthly(baseStart, p, endBound)
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	// MaxOccurrences считает серию целиком, включая базовую блокировку
	if p.MaxOccurrences != nil {
		budget := *p.MaxOccurrences - 1
		if budget < 0 {
			budget = 0
		}
		if len(starts) > budget {
			starts = starts[:budget]
		}
	}

	result := make([]domain.TimeRange, 0, len(starts))
	for _, s := range starts {
		result = append(result, domain.TimeRange{Start: s, End: s.Add(duration)})
	}

	return result
}

// expandDaily шагает от базового начала с шагом interval дней
func expandDaily(baseStart time.Time, interval int, endBound time.Time) []time.Time {
	starts := make([]time.Time, 0)

	for t := baseStart.AddDate(0, 0, interval); !t.After(endBound); t = t.AddDate(0, 0, interval) {
		starts = append(starts, t)
	}

	return starts
}

// expandWeekly генерирует вхождения по выбранным дням недели
// В базовой неделе учитываются только дни строго после дня базовой блокировки,
// дальше недели идут с шагом interval от начала следующей недели
func expandWeekly(baseStart time.Time, p domain.RecurrencePattern, endBound time.Time) []time.Time {
	starts := make([]time.Time, 0)

	baseWeekday := baseStart.Weekday()

	for _, d := range p.DaysOfWeek {
		if d > baseWeekday {
			t := baseStart.AddDate(0, 0, int(d-baseWeekday))
			if !t.After(endBound) {
				starts = append(starts, t)
			}
		}
	}

	// Начало следующей недели (воскресенье) с временем суток базовой блокировки
	nextWeekStart := atTime(baseStart.AddDate(0, 0, 7-int(baseWeekday)), baseStart)

	for weekStart := nextWeekStart; !weekStart.After(endBound); weekStart = weekStart.AddDate(0, 0, 7*p.Interval) {
		for _, d := range p.DaysOfWeek {
			t := weekStart.AddDate(0, 0, int(d))
			if !t.After(endBound) {
				starts = append(starts, t)
			}
		}
	}

	return starts
}

// expandMonthly генерирует вхождения по выбранным дням месяца
// Положительный день прижимается к длине месяца, отрицательный считается с конца
func expandMonthly(baseStart time.Time, p domain.RecurrencePattern, endBound time.Time) []time.Time {
	starts := make([]time.Time, 0)

	monthStart := time.Date(baseStart.Year(), baseStart.Month(), 1, 0, 0, 0, 0, baseStart.Location())

	for month := monthStart; !month.After(endBound); month = month.AddDate(0, p.Interval, 0) {
		dim := daysInMonth(month)

		for _, d := range p.DaysOfMonth {
			day := resolveDayOfMonth(d, dim)
			if day < 1 || day > dim {
				continue
			}

			t := time.Date(
				month.Year(), month.Month(), day,
				baseStart.Hour(), baseStart.Minute(), baseStart.Second(), 0,
				baseStart.Location(),
			)

			if t.Before(baseStart) || t.After(endBound) {
				continue
			}
			// Базовая блокировка не дублируется
			if t.Equal(baseStart) {
				continue
			}

			starts = append(starts, t)
		}
	}

	return starts
}

// resolveDayOfMonth переводит селектор дня в календарный день месяца
func resolveDayOfMonth(d, daysInMonth int) int {
	if d > 0 {
		if d > daysInMonth {
			return daysInMonth
		}
		return d
	}
	return daysInMonth + d + 1
}

// daysInMonth возвращает число дней в месяце даты t
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// atTime совмещает дату date с временем суток из base
func atTime(date, base time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		base.Hour(), base.Minute(), base.Second(), 0,
		base.Location(),
	)
}
