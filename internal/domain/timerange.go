package domain

import (
	"sort"
	"time"
)

// TimeRange полуоткрытый по смыслу интервал времени [Start, End]
// Инвариант: Start < End. Интервалы, соприкасающиеся границами,
// пересечением не считаются
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid возвращает true для невырожденного интервала
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Duration возвращает длительность интервала
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Overlap возвращает пересечение двух интервалов
// Вырожденное пересечение (касание границ) пересечением не считается
func Overlap(a, b TimeRange) (TimeRange, bool) {
	if a.Start.After(b.End) || a.End.Before(b.Start) {
		return TimeRange{}, false
	}

	result := TimeRange{
		Start: maxTime(a.Start, b.Start),
		End:   minTime(a.End, b.End),
	}

	if !result.IsValid() {
		return TimeRange{}, false
	}

	return result, true
}

// SubtractBusy вычитает занятый интервал из набора свободных
// От каждого затронутого свободного интервала остаются куски слева
// и справа от busy; соприкосновение границ интервал не режет
func SubtractBusy(free []TimeRange, busy TimeRange) []TimeRange {
	result := make([]TimeRange, 0, len(free))

	for _, f := range free {
		if !(f.Start.Before(busy.End) && f.End.After(busy.Start)) {
			result = append(result, f)
			continue
		}

		if f.Start.Before(busy.Start) {
			result = append(result, TimeRange{Start: f.Start, End: busy.Start})
		}

		if busy.End.Before(f.End) {
			result = append(result, TimeRange{Start: busy.End, End: f.End})
		}
	}

	return result
}

// MergeRanges сливает пересекающиеся и стыкующиеся интервалы
// Результат отсортирован по началу
func MergeRanges(ranges []TimeRange) []TimeRange {
	if len(ranges) == 0 {
		return []TimeRange{}
	}

	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	result := make([]TimeRange, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		_, overlaps := Overlap(current, next)
		if overlaps || current.End.Equal(next.Start) {
			current.End = maxTime(current.End, next.End)
			continue
		}

		result = append(result, current)
		current = next
	}

	return append(result, current)
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
