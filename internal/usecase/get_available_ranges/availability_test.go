package get_available_ranges

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func dt(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return parsed
}

func tod(t *testing.T, value string) types.TimeOfDay {
	t.Helper()
	parsed, err := types.ParseTimeOfDay(value)
	require.NoError(t, err)
	return parsed
}

func TestCalculateDayAvailability(t *testing.T) {
	day := dt(t, "2025-06-11 00:00:00") // среда

	t.Run("no working hours means the whole day is available", func(t *testing.T) {
		got, err := calculateDayAvailability(day, nil, nil, nil, 0, 0)
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, dt(t, "2025-06-11 00:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-11 23:59:59"), got[0].End)
	})

	t.Run("degenerate working hours behave like a missing row", func(t *testing.T) {
		wh := &domain.WorkingHours{
			Day:       time.Wednesday,
			StartTime: tod(t, "09:00:00"),
			EndTime:   tod(t, "09:00:00"),
		}

		got, err := calculateDayAvailability(day, wh, nil, nil, 0, 0)
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, dt(t, "2025-06-11 00:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-11 23:59:59"), got[0].End)
	})

	t.Run("time block splits the working window", func(t *testing.T) {
		wh := &domain.WorkingHours{
			Day:       time.Wednesday,
			StartTime: tod(t, "09:00:00"),
			EndTime:   tod(t, "18:00:00"),
		}
		blocks := []*domain.TimeBlock{{
			StartDateTime: dt(t, "2025-06-11 12:00:00"),
			EndDateTime:   dt(t, "2025-06-11 13:00:00"),
			Type:          domain.BlockTypeBreak,
		}}

		got, err := calculateDayAvailability(day, wh, blocks, nil, 0, 0)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, dt(t, "2025-06-11 09:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-11 12:00:00"), got[0].End)
		assert.Equal(t, dt(t, "2025-06-11 13:00:00"), got[1].Start)
		assert.Equal(t, dt(t, "2025-06-11 18:00:00"), got[1].End)
	})

	t.Run("midnight spanning block shortens the tail day", func(t *testing.T) {
		// Блокировка началась накануне, но ее хвост занимает начало дня
		blocks := []*domain.TimeBlock{{
			StartDateTime: dt(t, "2025-06-10 22:00:00"),
			EndDateTime:   dt(t, "2025-06-11 02:00:00"),
			Type:          domain.BlockTypeCustom,
		}}

		got, err := calculateDayAvailability(day, nil, blocks, nil, 0, 0)
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, dt(t, "2025-06-11 02:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-11 23:59:59"), got[0].End)
	})

	t.Run("booking is padded with tenant buffers", func(t *testing.T) {
		wh := &domain.WorkingHours{
			Day:       time.Wednesday,
			StartTime: tod(t, "09:00:00"),
			EndTime:   tod(t, "18:00:00"),
		}
		bookings := []*domain.Booking{{
			StartDateTime: dt(t, "2025-06-11 10:00:00"),
			EndDateTime:   dt(t, "2025-06-11 11:00:00"),
			Status:        domain.StatusConfirmed,
		}}

		got, err := calculateDayAvailability(day, wh, nil, bookings, 15, 30)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, dt(t, "2025-06-11 09:45:00"), got[0].End)
		assert.Equal(t, dt(t, "2025-06-11 11:30:00"), got[1].Start)
	})

	t.Run("cancelled and completed bookings are ignored", func(t *testing.T) {
		wh := &domain.WorkingHours{
			Day:       time.Wednesday,
			StartTime: tod(t, "09:00:00"),
			EndTime:   tod(t, "18:00:00"),
		}
		bookings := []*domain.Booking{
			{
				StartDateTime: dt(t, "2025-06-11 10:00:00"),
				EndDateTime:   dt(t, "2025-06-11 11:00:00"),
				Status:        domain.StatusCancelled,
			},
			{
				StartDateTime: dt(t, "2025-06-11 14:00:00"),
				EndDateTime:   dt(t, "2025-06-11 15:00:00"),
				Status:        domain.StatusCompleted,
			},
		}

		got, err := calculateDayAvailability(day, wh, nil, bookings, 0, 0)
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, dt(t, "2025-06-11 09:00:00"), got[0].Start)
		assert.Equal(t, dt(t, "2025-06-11 18:00:00"), got[0].End)
	})
}

type stubTenantRepo struct {
	tenant *domain.Tenant
}

func (s *stubTenantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Tenant, error) {
	if s.tenant == nil || s.tenant.ID != id {
		return nil, tenantRepo.ErrTenantNotFound
	}
	return s.tenant, nil
}

type stubWorkingHoursRepo struct {
	hours []*domain.WorkingHours
}

func (s *stubWorkingHoursRepo) GetByTenant(_ context.Context, _ uuid.UUID) ([]*domain.WorkingHours, error) {
	return s.hours, nil
}

type stubTimeBlockRepo struct {
	blocks []*domain.TimeBlock
}

func (s *stubTimeBlockRepo) GetByTenantAndDateRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*domain.TimeBlock, error) {
	return s.blocks, nil
}

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) GetByTenantAndDateRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, BusinessName: "Test Barbershop"}

	t.Run("multi day period is sorted by range start", func(t *testing.T) {
		uc := NewUseCase(
			&stubTenantRepo{tenant: tenant},
			&stubWorkingHoursRepo{hours: []*domain.WorkingHours{
				{TenantID: tenantID, Day: time.Monday, StartTime: tod(t, "09:00:00"), EndTime: tod(t, "18:00:00")},
				{TenantID: tenantID, Day: time.Tuesday, StartTime: tod(t, "10:00:00"), EndTime: tod(t, "16:00:00")},
			}},
			&stubTimeBlockRepo{},
			&stubBookingRepo{},
			nopLogger{},
		)

		// Понедельник и вторник
		resp, err := uc.Execute(context.Background(), &Request{
			TenantID:  tenantID,
			StartDate: dt(t, "2025-06-02 00:00:00"),
			EndDate:   dt(t, "2025-06-03 00:00:00"),
		})
		require.NoError(t, err)

		require.Len(t, resp.Ranges, 2)
		assert.Equal(t, dt(t, "2025-06-02 09:00:00"), resp.Ranges[0].Start)
		assert.Equal(t, dt(t, "2025-06-02 18:00:00"), resp.Ranges[0].End)
		assert.Equal(t, dt(t, "2025-06-03 10:00:00"), resp.Ranges[1].Start)
		assert.Equal(t, dt(t, "2025-06-03 16:00:00"), resp.Ranges[1].End)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		uc := NewUseCase(
			&stubTenantRepo{},
			&stubWorkingHoursRepo{},
			&stubTimeBlockRepo{},
			&stubBookingRepo{},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{
			TenantID:  uuid.New(),
			StartDate: dt(t, "2025-06-02 00:00:00"),
			EndDate:   dt(t, "2025-06-02 00:00:00"),
		})

		assert.ErrorIs(t, err, ErrTenantNotFound)
	})

	t.Run("reversed period is rejected", func(t *testing.T) {
		uc := NewUseCase(
			&stubTenantRepo{tenant: tenant},
			&stubWorkingHoursRepo{},
			&stubTimeBlockRepo{},
			&stubBookingRepo{},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{
			TenantID:  tenantID,
			StartDate: dt(t, "2025-06-03 00:00:00"),
			EndDate:   dt(t, "2025-06-02 00:00:00"),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
