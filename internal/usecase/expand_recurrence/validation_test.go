package expand_recurrence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		TenantID:      uuid.New(),
		StartDateTime: dt(t, "2025-06-02 10:00:00"),
		EndDateTime:   dt(t, "2025-06-02 11:00:00"),
		Type:          domain.BlockTypeBreak,
		Pattern: domain.RecurrencePattern{
			Frequency:      domain.FrequencyDaily,
			Interval:       1,
			MaxOccurrences: ptr.Ptr(5),
		},
	}
}

func fieldErrors(t *testing.T, err error) domain.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidInput)
	var errs domain.ValidationErrors
	require.ErrorAs(t, err, &errs, "expected validation errors, got %T: %v", err, err)
	return errs
}

func fields(errs domain.ValidationErrors) []string {
	result := make([]string, 0, len(errs))
	for _, fe := range errs {
		result = append(result, fe.Field)
	}
	return result
}

func TestValidateRequest(t *testing.T) {
	now := dt(t, "2025-06-01 12:00:00")

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest(t), now))
	})

	t.Run("start must be before end", func(t *testing.T) {
		req := validRequest(t)
		req.EndDateTime = req.StartDateTime

		errs := fieldErrors(t, validateRequest(req, now))
		assert.Contains(t, fields(errs), "startDateTime")
	})

	t.Run("interval below one is rejected", func(t *testing.T) {
		req := validRequest(t)
		req.Pattern.Interval = 0

		errs := fieldErrors(t, validateRequest(req, now))
		assert.Contains(t, fields(errs), "pattern.interval")
	})

	t.Run("termination condition is required", func(t *testing.T) {
		req := validRequest(t)
		req.Pattern.MaxOccurrences = nil

		errs := fieldErrors(t, validateRequest(req, now))
		assert.Contains(t, fields(errs), "pattern.endDate")
	})

	t.Run("endDate and maxOccurrences are mutually exclusive", func(t *testing.T) {
		req := validRequest(t)
		req.Pattern.EndDate = ptr.Ptr(dt(t, "2025-07-01 00:00:00"))

		errs := fieldErrors(t, validateRequest(req, now))
		assert.Contains(t, fields(errs), "pattern.endDate")
	})

	t.Run("endDate in the past is rejected", func(t *testing.T) {
		req := validRequest(t)
		req.Pattern.MaxOccurrences = nil
		req.Pattern.EndDate = ptr.Ptr(dt(t, "2025-05-01 00:00:00"))

		errs := fieldErrors(t, validateRequest(req, now))
		assert.Contains(t, fields(errs), "pattern.endDate")
	})

	t.Run("daily frequency rejects day selectors", func(t *testing.T) {
		req := validRequest(t)
		req.Pattern.DaysOfWeek = []time.Weekday{time.Monday}
		req.Pattern.DaysOfMonth = []int{1}

		errs := fieldErrors(t, validateRequest(req, now))
		assert.Contains(t, fields(errs), "pattern.daysOfWeek")
		assert.Contains(t, fields(errs), "pattern.daysOfMonth")
	})

	t.Run("weekly pattern must include the base weekday", func(t *testing.T) {
		req := validRequest(t)
		// База - понедельник, в селекторе только вторник
		req.Pattern.Frequency = domain.FrequencyWeekly
		req.Pattern.DaysOfWeek = []time.Weekday{time.Tuesday}

		errs := fieldErrors(t, validateRequest(req, now))
		require.Len(t, errs, 1)
		assert.Equal(t, "pattern.daysOfWeek", errs[0].Field)
		assert.Contains(t, errs[0].Message, "Monday")
	})

	t.Run("weekly pattern rejects duplicate days", func(t *testing.T) {
		req := validRequest(t)
		req.Pattern.Frequency = domain.FrequencyWeekly
		req.Pattern.DaysOfWeek = []time.Weekday{time.Monday, time.Monday}

		errs := fieldErrors(t, validateRequest(req, now))
		assert.Contains(t, fields(errs), "pattern.daysOfWeek")
	})

	t.Run("monthly pattern rejects unsupported negative days", func(t *testing.T) {
		req := validRequest(t)
		req.Pattern.Frequency = domain.FrequencyMonthly
		req.Pattern.DaysOfMonth = []int{2, -5}

		errs := fieldErrors(t, validateRequest(req, now))
		assert.Contains(t, fields(errs), "pattern.daysOfMonth")
	})

	t.Run("monthly pattern accepts base day via negative alias", func(t *testing.T) {
		req := validRequest(t)
		// 2025-06-30 - последний день месяца
		req.StartDateTime = dt(t, "2025-06-30 10:00:00")
		req.EndDateTime = dt(t, "2025-06-30 11:00:00")
		req.Pattern.Frequency = domain.FrequencyMonthly
		req.Pattern.DaysOfMonth = []int{-1}

		assert.NoError(t, validateRequest(req, now))
	})

	t.Run("monthly pattern must include the base day", func(t *testing.T) {
		req := validRequest(t)
		req.Pattern.Frequency = domain.FrequencyMonthly
		req.Pattern.DaysOfMonth = []int{15}

		errs := fieldErrors(t, validateRequest(req, now))
		require.Len(t, errs, 1)
		assert.Equal(t, "pattern.daysOfMonth", errs[0].Field)
	})
}
