package workinghours

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	whRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakeWorkingHoursRepo struct {
	hours map[uuid.UUID]*domain.WorkingHours
}

func newFakeWorkingHoursRepo() *fakeWorkingHoursRepo {
	return &fakeWorkingHoursRepo{hours: make(map[uuid.UUID]*domain.WorkingHours)}
}

func (f *fakeWorkingHoursRepo) Create(_ context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	for _, existing := range f.hours {
		if existing.TenantID == wh.TenantID && existing.Day == wh.Day {
			return nil, whRepo.ErrDuplicateDay
		}
	}
	copied := *wh
	f.hours[wh.ID] = &copied
	return &copied, nil
}

func (f *fakeWorkingHoursRepo) CreateBatch(ctx context.Context, hours []*domain.WorkingHours) error {
	for _, wh := range hours {
		if _, err := f.Create(ctx, wh); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeWorkingHoursRepo) GetByTenant(_ context.Context, tenantID uuid.UUID) ([]*domain.WorkingHours, error) {
	var result []*domain.WorkingHours
	for _, wh := range f.hours {
		if wh.TenantID == tenantID {
			copied := *wh
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeWorkingHoursRepo) Delete(_ context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	wh, ok := f.hours[id]
	if !ok || wh.TenantID != tenantID {
		return whRepo.ErrWorkingHoursNotFound
	}
	delete(f.hours, id)
	return nil
}

func (f *fakeWorkingHoursRepo) DeleteByTenant(_ context.Context, tenantID uuid.UUID) (int64, error) {
	var deleted int64
	for id, wh := range f.hours {
		if wh.TenantID == tenantID {
			delete(f.hours, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates working hours with defaults", func(t *testing.T) {
		repo := newFakeWorkingHoursRepo()
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		resp, err := svc.Create(context.Background(), tenantID, &models.CreateWorkingHoursRequest{
			Day:       1,
			StartTime: "09:00:00",
			EndTime:   "18:00:00",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Day)
		assert.Equal(t, 1, resp.MaxConcurrentBookings)
	})

	t.Run("rejects day out of range", func(t *testing.T) {
		svc := NewService(newFakeWorkingHoursRepo(), fakeTxManager{}, nopLogger{})

		_, err := svc.Create(context.Background(), tenantID, &models.CreateWorkingHoursRequest{
			Day:       7,
			StartTime: "09:00:00",
			EndTime:   "18:00:00",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("maps duplicate day", func(t *testing.T) {
		repo := newFakeWorkingHoursRepo()
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		_, err := svc.Create(context.Background(), tenantID, &models.CreateWorkingHoursRequest{
			Day: 2, StartTime: "09:00:00", EndTime: "18:00:00",
		})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), tenantID, &models.CreateWorkingHoursRequest{
			Day: 2, StartTime: "10:00:00", EndTime: "19:00:00",
		})
		assert.ErrorIs(t, err, ErrDuplicateDay)
	})
}

func TestService_SetWeeklySchedule(t *testing.T) {
	tenantID := uuid.New()

	t.Run("replaces the whole schedule", func(t *testing.T) {
		repo := newFakeWorkingHoursRepo()
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		// Старое расписание, которое должно быть вытеснено
		_, err := svc.Create(context.Background(), tenantID, &models.CreateWorkingHoursRequest{
			Day: 0, StartTime: "08:00:00", EndTime: "12:00:00",
		})
		require.NoError(t, err)

		resp, err := svc.SetWeeklySchedule(context.Background(), tenantID, &models.SetWeeklyScheduleRequest{
			Schedule: []models.WeeklyScheduleEntry{
				{
					Days:      []int{1, 2, 3, 4, 5},
					StartTime: ptr.Ptr("09:00:00"),
					EndTime:   ptr.Ptr("18:00:00"),
				},
				{
					Days:       []int{0, 6},
					IsWorkFree: true,
				},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 5, resp.CreatedCount)
		assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, resp.CreatedDays)
		assert.Equal(t, []string{"Sunday", "Saturday"}, resp.FreeDays)

		remaining, err := svc.GetByTenant(context.Background(), tenantID)
		require.NoError(t, err)
		assert.Len(t, remaining.Items, 5)
		for _, item := range remaining.Items {
			assert.NotEqual(t, 0, item.Day)
		}
	})

	t.Run("unlisted days are also reported as free", func(t *testing.T) {
		svc := NewService(newFakeWorkingHoursRepo(), fakeTxManager{}, nopLogger{})

		resp, err := svc.SetWeeklySchedule(context.Background(), tenantID, &models.SetWeeklyScheduleRequest{
			Schedule: []models.WeeklyScheduleEntry{
				{
					Days:      []int{1},
					StartTime: ptr.Ptr("09:00:00"),
					EndTime:   ptr.Ptr("18:00:00"),
				},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.CreatedCount)
		assert.Equal(t, []string{"Sunday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}, resp.FreeDays)
	})

	t.Run("rejects empty schedule", func(t *testing.T) {
		svc := NewService(newFakeWorkingHoursRepo(), fakeTxManager{}, nopLogger{})

		_, err := svc.SetWeeklySchedule(context.Background(), tenantID, &models.SetWeeklyScheduleRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects work day without times", func(t *testing.T) {
		svc := NewService(newFakeWorkingHoursRepo(), fakeTxManager{}, nopLogger{})

		_, err := svc.SetWeeklySchedule(context.Background(), tenantID, &models.SetWeeklyScheduleRequest{
			Schedule: []models.WeeklyScheduleEntry{
				{Days: []int{1}},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects duplicate day across entries", func(t *testing.T) {
		svc := NewService(newFakeWorkingHoursRepo(), fakeTxManager{}, nopLogger{})

		_, err := svc.SetWeeklySchedule(context.Background(), tenantID, &models.SetWeeklyScheduleRequest{
			Schedule: []models.WeeklyScheduleEntry{
				{
					Days:      []int{1, 2},
					StartTime: ptr.Ptr("09:00:00"),
					EndTime:   ptr.Ptr("18:00:00"),
				},
				{
					Days:       []int{2},
					IsWorkFree: true,
				},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Delete(t *testing.T) {
	tenantID := uuid.New()
	repo := newFakeWorkingHoursRepo()
	svc := NewService(repo, fakeTxManager{}, nopLogger{})

	created, err := svc.Create(context.Background(), tenantID, &models.CreateWorkingHoursRequest{
		Day: int(time.Friday), StartTime: "09:00:00", EndTime: "18:00:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), tenantID, created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), tenantID, created.ID), ErrWorkingHoursNotFound)
}
