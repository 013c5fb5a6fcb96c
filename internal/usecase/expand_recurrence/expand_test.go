package expand_recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func dt(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return parsed
}

func TestExpandDaily(t *testing.T) {
	t.Run("maxOccurrences counts the base block", func(t *testing.T) {
		baseStart := dt(t, "2025-06-02 10:00:00")
		baseEnd := dt(t, "2025-06-02 11:00:00")

		got := expandOccurrences(baseStart, baseEnd, domain.RecurrencePattern{
			Frequency:      domain.FrequencyDaily,
			Interval:       1,
			MaxOccurrences: ptr.Ptr(3),
		})

		// База + 2 дополнительных вхождения
		require.Len(t, got, 2)
		assert.Equal(t, dt(t, "2025-06-03 10:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-03 11:00:00"), got[0].End)
		assert.Equal(t, dt(t, "2025-06-04 10:00:00"), got[1].Start)
	})

	t.Run("interval skips days", func(t *testing.T) {
		baseStart := dt(t, "2025-06-02 10:00:00")
		baseEnd := dt(t, "2025-06-02 10:30:00")

		got := expandOccurrences(baseStart, baseEnd, domain.RecurrencePattern{
			Frequency: domain.FrequencyDaily,
			Interval:  3,
			EndDate:   ptr.Ptr(dt(t, "2025-06-12 00:00:00")),
		})

		require.Len(t, got, 3)
		assert.Equal(t, dt(t, "2025-06-05 10:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-08 10:00:00"), got[1].Start)
		assert.Equal(t, dt(t, "2025-06-11 10:00:00"), got[2].Start)
	})

	t.Run("without endDate generation stops at the two year horizon", func(t *testing.T) {
		baseStart := dt(t, "2025-01-01 09:00:00")
		baseEnd := dt(t, "2025-01-01 10:00:00")

		got := expandOccurrences(baseStart, baseEnd, domain.RecurrencePattern{
			Frequency:      domain.FrequencyDaily,
			Interval:       1,
			MaxOccurrences: ptr.Ptr(100000),
		})

		require.NotEmpty(t, got)
		last := got[len(got)-1]
		assert.False(t, last.Start.After(baseStart.AddDate(2, 0, 0)))
	})
}

func TestExpandWeekly(t *testing.T) {
	t.Run("base week includes only days after the base weekday", func(t *testing.T) {
		// Среда 2025-06-04
		baseStart := dt(t, "2025-06-04 14:00:00")
		baseEnd := dt(t, "2025-06-04 15:00:00")

		got := expandOccurrences(baseStart, baseEnd, domain.RecurrencePattern{
			Frequency:  domain.FrequencyWeekly,
			Interval:   1,
			DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
			EndDate:    ptr.Ptr(dt(t, "2025-06-13 23:59:59")),
		})

		// Базовая неделя: только пятница. Следующая неделя: пн, ср, пт
		require.Len(t, got, 4)
		assert.Equal(t, dt(t, "2025-06-06 14:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-09 14:00:00"), got[1].Start)
		assert.Equal(t, dt(t, "2025-06-11 14:00:00"), got[2].Start)
		assert.Equal(t, dt(t, "2025-06-13 14:00:00"), got[3].Start)
	})

	t.Run("biweekly interval steps whole weeks", func(t *testing.T) {
		// Понедельник 2025-06-02
		baseStart := dt(t, "2025-06-02 09:00:00")
		baseEnd := dt(t, "2025-06-02 09:30:00")

		got := expandOccurrences(baseStart, baseEnd, domain.RecurrencePattern{
			Frequency:  domain.FrequencyWeekly,
			Interval:   2,
			DaysOfWeek: []time.Weekday{time.Monday},
			EndDate:    ptr.Ptr(dt(t, "2025-07-01 00:00:00")),
		})

		require.Len(t, got, 2)
		assert.Equal(t, dt(t, "2025-06-09 09:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-23 09:00:00"), got[1].Start)
	})
}

func TestExpandMonthly(t *testing.T) {
	t.Run("last day of month tracks month length", func(t *testing.T) {
		baseStart := dt(t, "2025-01-31 10:00:00")
		baseEnd := dt(t, "2025-01-31 12:00:00")

		got := expandOccurrences(baseStart, baseEnd, domain.RecurrencePattern{
			Frequency:   domain.FrequencyMonthly,
			Interval:    1,
			DaysOfMonth: []int{-1},
			EndDate:     ptr.Ptr(dt(t, "2025-04-01 00:00:00")),
		})

		require.Len(t, got, 2)
		assert.Equal(t, dt(t, "2025-02-28 10:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-03-31 10:00:00"), got[1].Start)
	})

	t.Run("positive day clamps to short months", func(t *testing.T) {
		baseStart := dt(t, "2025-01-31 08:00:00")
		baseEnd := dt(t, "2025-01-31 09:00:00")

		got := expandOccurrences(baseStart, baseEnd, domain.RecurrencePattern{
			Frequency:   domain.FrequencyMonthly,
			Interval:    1,
			DaysOfMonth: []int{31},
			EndDate:     ptr.Ptr(dt(t, "2025-05-01 00:00:00")),
		})

		require.Len(t, got, 3)
		assert.Equal(t, dt(t, "2025-02-28 08:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-03-31 08:00:00"), got[1].Start)
		assert.Equal(t, dt(t, "2025-04-30 08:00:00"), got[2].Start)
	})

	t.Run("base occurrence is not duplicated", func(t *testing.T) {
		baseStart := dt(t, "2025-06-15 10:00:00")
		baseEnd := dt(t, "2025-06-15 11:00:00")

		got := expandOccurrences(baseStart, baseEnd, domain.RecurrencePattern{
			Frequency:   domain.FrequencyMonthly,
			Interval:    1,
			DaysOfMonth: []int{15},
			EndDate:     ptr.Ptr(dt(t, "2025-08-31 00:00:00")),
		})

		require.Len(t, got, 2)
		assert.Equal(t, dt(t, "2025-07-15 10:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-08-15 10:00:00"), got[1].Start)
	})

	t.Run("multiple day selectors are sorted chronologically", func(t *testing.T) {
		baseStart := dt(t, "2025-06-01 10:00:00")
		baseEnd := dt(t, "2025-06-01 10:30:00")

		got := expandOccurrences(baseStart, baseEnd, domain.RecurrencePattern{
			Frequency:   domain.FrequencyMonthly,
			Interval:    1,
			DaysOfMonth: []int{-1, 1, 15},
			EndDate:     ptr.Ptr(dt(t, "2025-07-31 23:59:59")),
		})

		require.Len(t, got, 5)
		assert.Equal(t, dt(t, "2025-06-15 10:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-30 10:00:00"), got[1].Start)
		assert.Equal(t, dt(t, "2025-07-01 10:00:00"), got[2].Start)
		assert.Equal(t, dt(t, "2025-07-15 10:00:00"), got[3].Start)
		assert.Equal(t, dt(t, "2025-07-31 10:00:00"), got[4].Start)
	})
}
