package timeblocks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	timeblockRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/timeblock"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakeTimeBlockRepo struct {
	blocks map[uuid.UUID]*domain.TimeBlock
}

func newFakeTimeBlockRepo() *fakeTimeBlockRepo {
	return &fakeTimeBlockRepo{blocks: make(map[uuid.UUID]*domain.TimeBlock)}
}

func (f *fakeTimeBlockRepo) add(block *domain.TimeBlock) {
	copied := *block
	f.blocks[block.ID] = &copied
}

func (f *fakeTimeBlockRepo) Create(_ context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	f.add(block)
	return f.blocks[block.ID], nil
}

func (f *fakeTimeBlockRepo) GetByID(_ context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.TimeBlock, error) {
	block, ok := f.blocks[id]
	if !ok || block.TenantID != tenantID {
		return nil, timeblockRepo.ErrTimeBlockNotFound
	}
	copied := *block
	return &copied, nil
}

func (f *fakeTimeBlockRepo) GetByTenant(_ context.Context, tenantID uuid.UUID, _ *domain.DateRange, limit, offset int) ([]*domain.TimeBlock, int, error) {
	var result []*domain.TimeBlock
	for _, block := range f.blocks {
		if block.TenantID == tenantID {
			copied := *block
			result = append(result, &copied)
		}
	}
	return result, len(result), nil
}

func (f *fakeTimeBlockRepo) GetByRecurrenceID(_ context.Context, tenantID uuid.UUID, recurrenceID uuid.UUID) ([]*domain.TimeBlock, error) {
	var result []*domain.TimeBlock
	for _, block := range f.blocks {
		if block.TenantID == tenantID && block.RecurrenceID != nil && *block.RecurrenceID == recurrenceID {
			copied := *block
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeTimeBlockRepo) Update(_ context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	if _, ok := f.blocks[block.ID]; !ok {
		return nil, timeblockRepo.ErrTimeBlockNotFound
	}
	f.add(block)
	copied := *block
	return &copied, nil
}

func (f *fakeTimeBlockRepo) Delete(_ context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	block, ok := f.blocks[id]
	if !ok || block.TenantID != tenantID {
		return timeblockRepo.ErrTimeBlockNotFound
	}
	delete(f.blocks, id)
	return nil
}

func (f *fakeTimeBlockRepo) DeleteByRecurrenceID(_ context.Context, tenantID uuid.UUID, recurrenceID uuid.UUID) (int64, error) {
	var deleted int64
	for id, block := range f.blocks {
		if block.TenantID == tenantID && block.RecurrenceID != nil && *block.RecurrenceID == recurrenceID {
			delete(f.blocks, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeTimeBlockRepo) DeleteByDateRange(_ context.Context, tenantID uuid.UUID, start, end time.Time) (int64, error) {
	var deleted int64
	for id, block := range f.blocks {
		if block.TenantID != tenantID {
			continue
		}
		if !block.StartDateTime.Before(start) && !block.StartDateTime.After(end) {
			delete(f.blocks, id)
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

func dt(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return parsed
}

func TestService_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates single block", func(t *testing.T) {
		repo := newFakeTimeBlockRepo()
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		resp, err := svc.Create(context.Background(), tenantID, &models.CreateTimeBlockRequest{
			StartDateTime: dt(t, "2025-06-11 12:00:00"),
			EndDateTime:   dt(t, "2025-06-11 13:00:00"),
			Type:          "break",
			Reason:        ptr.Ptr("lunch"),
		})

		require.NoError(t, err)
		assert.Equal(t, tenantID, resp.TenantID)
		assert.Equal(t, "break", resp.Type)
		assert.Nil(t, resp.RecurrenceID)
		assert.Len(t, repo.blocks, 1)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		svc := NewService(newFakeTimeBlockRepo(), fakeTxManager{}, nopLogger{})

		_, err := svc.Create(context.Background(), tenantID, &models.CreateTimeBlockRequest{
			StartDateTime: dt(t, "2025-06-11 12:00:00"),
			EndDateTime:   dt(t, "2025-06-11 13:00:00"),
			Type:          "holiday",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects reversed period", func(t *testing.T) {
		svc := NewService(newFakeTimeBlockRepo(), fakeTxManager{}, nopLogger{})

		_, err := svc.Create(context.Background(), tenantID, &models.CreateTimeBlockRequest{
			StartDateTime: dt(t, "2025-06-11 13:00:00"),
			EndDateTime:   dt(t, "2025-06-11 12:00:00"),
			Type:          "break",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	tenantID := uuid.New()

	newSeries := func(repo *fakeTimeBlockRepo) (uuid.UUID, []*domain.TimeBlock) {
		recurrenceID := uuid.New()
		var series []*domain.TimeBlock
		for day := 11; day <= 13; day++ {
			block := &domain.TimeBlock{
				ID:            uuid.New(),
				TenantID:      tenantID,
				StartDateTime: time.Date(2025, 6, day, 12, 0, 0, 0, time.UTC),
				EndDateTime:   time.Date(2025, 6, day, 13, 0, 0, 0, time.UTC),
				Type:          domain.BlockTypeBreak,
				RecurrenceID:  &recurrenceID,
			}
			repo.add(block)
			series = append(series, block)
		}
		return recurrenceID, series
	}

	t.Run("updates single block in place", func(t *testing.T) {
		repo := newFakeTimeBlockRepo()
		block := &domain.TimeBlock{
			ID:            uuid.New(),
			TenantID:      tenantID,
			StartDateTime: dt(t, "2025-06-11 12:00:00"),
			EndDateTime:   dt(t, "2025-06-11 13:00:00"),
			Type:          domain.BlockTypeBreak,
		}
		repo.add(block)
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		resp, err := svc.Update(context.Background(), tenantID, block.ID, &models.UpdateTimeBlockRequest{
			StartTime: ptr.Ptr("14:00:00"),
			EndTime:   ptr.Ptr("15:30:00"),
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-06-11T14:00:00", resp.StartDateTime)
		assert.Equal(t, "2025-06-11T15:30:00", resp.EndDateTime)
	})

	t.Run("editPattern shifts time of day across the series keeping dates", func(t *testing.T) {
		repo := newFakeTimeBlockRepo()
		recurrenceID, series := newSeries(repo)
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		resp, err := svc.Update(context.Background(), tenantID, series[1].ID, &models.UpdateTimeBlockRequest{
			StartTime:   ptr.Ptr("09:00:00"),
			EndTime:     ptr.Ptr("10:00:00"),
			EditPattern: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-06-12T09:00:00", resp.StartDateTime)

		updated, err := repo.GetByRecurrenceID(context.Background(), tenantID, recurrenceID)
		require.NoError(t, err)
		require.Len(t, updated, 3)
		for _, member := range updated {
			assert.Equal(t, 9, member.StartDateTime.Hour())
			assert.Equal(t, 10, member.EndDateTime.Hour())
		}
		days := map[int]bool{}
		for _, member := range updated {
			days[member.StartDateTime.Day()] = true
		}
		assert.Equal(t, map[int]bool{11: true, 12: true, 13: true}, days)
	})

	t.Run("without editPattern only the target block changes", func(t *testing.T) {
		repo := newFakeTimeBlockRepo()
		_, series := newSeries(repo)
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), tenantID, series[0].ID, &models.UpdateTimeBlockRequest{
			StartTime: ptr.Ptr("09:00:00"),
		})
		require.NoError(t, err)

		assert.Equal(t, 9, repo.blocks[series[0].ID].StartDateTime.Hour())
		assert.Equal(t, 12, repo.blocks[series[1].ID].StartDateTime.Hour())
	})

	t.Run("rejects empty patch", func(t *testing.T) {
		repo := newFakeTimeBlockRepo()
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), tenantID, uuid.New(), &models.UpdateTimeBlockRequest{})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects patch producing reversed period", func(t *testing.T) {
		repo := newFakeTimeBlockRepo()
		block := &domain.TimeBlock{
			ID:            uuid.New(),
			TenantID:      tenantID,
			StartDateTime: dt(t, "2025-06-11 12:00:00"),
			EndDateTime:   dt(t, "2025-06-11 13:00:00"),
			Type:          domain.BlockTypeBreak,
		}
		repo.add(block)
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), tenantID, block.ID, &models.UpdateTimeBlockRequest{
			StartTime: ptr.Ptr("14:00:00"),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newFakeTimeBlockRepo(), fakeTxManager{}, nopLogger{})

		_, err := svc.Update(context.Background(), tenantID, uuid.New(), &models.UpdateTimeBlockRequest{
			StartTime: ptr.Ptr("09:00:00"),
		})

		assert.ErrorIs(t, err, ErrTimeBlockNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	tenantID := uuid.New()

	t.Run("deletePattern removes the whole series", func(t *testing.T) {
		repo := newFakeTimeBlockRepo()
		recurrenceID := uuid.New()
		var ids []uuid.UUID
		for day := 11; day <= 13; day++ {
			block := &domain.TimeBlock{
				ID:            uuid.New(),
				TenantID:      tenantID,
				StartDateTime: time.Date(2025, 6, day, 12, 0, 0, 0, time.UTC),
				EndDateTime:   time.Date(2025, 6, day, 13, 0, 0, 0, time.UTC),
				Type:          domain.BlockTypeBreak,
				RecurrenceID:  &recurrenceID,
			}
			repo.add(block)
			ids = append(ids, block.ID)
		}
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		require.NoError(t, svc.Delete(context.Background(), tenantID, ids[0], true))
		assert.Empty(t, repo.blocks)
	})

	t.Run("without deletePattern removes one occurrence", func(t *testing.T) {
		repo := newFakeTimeBlockRepo()
		recurrenceID := uuid.New()
		first := &domain.TimeBlock{
			ID:            uuid.New(),
			TenantID:      tenantID,
			StartDateTime: dt(t, "2025-06-11 12:00:00"),
			EndDateTime:   dt(t, "2025-06-11 13:00:00"),
			Type:          domain.BlockTypeBreak,
			RecurrenceID:  &recurrenceID,
		}
		second := &domain.TimeBlock{
			ID:            uuid.New(),
			TenantID:      tenantID,
			StartDateTime: dt(t, "2025-06-12 12:00:00"),
			EndDateTime:   dt(t, "2025-06-12 13:00:00"),
			Type:          domain.BlockTypeBreak,
			RecurrenceID:  &recurrenceID,
		}
		repo.add(first)
		repo.add(second)
		svc := NewService(repo, fakeTxManager{}, nopLogger{})

		require.NoError(t, svc.Delete(context.Background(), tenantID, first.ID, false))
		assert.Len(t, repo.blocks, 1)
		assert.Contains(t, repo.blocks, second.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newFakeTimeBlockRepo(), fakeTxManager{}, nopLogger{})
		assert.ErrorIs(t, svc.Delete(context.Background(), tenantID, uuid.New(), false), ErrTimeBlockNotFound)
	})
}

func TestService_BulkDeleteByRange(t *testing.T) {
	tenantID := uuid.New()
	repo := newFakeTimeBlockRepo()
	inside := &domain.TimeBlock{
		ID:            uuid.New(),
		TenantID:      tenantID,
		StartDateTime: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC),
		Type:          domain.BlockTypeCustom,
	}
	outside := &domain.TimeBlock{
		ID:            uuid.New(),
		TenantID:      tenantID,
		StartDateTime: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2025, 7, 1, 13, 0, 0, 0, time.UTC),
		Type:          domain.BlockTypeCustom,
	}
	repo.add(inside)
	repo.add(outside)
	svc := NewService(repo, fakeTxManager{}, nopLogger{})

	resp, err := svc.BulkDeleteByRange(context.Background(), tenantID, &models.BulkDeleteRequest{
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Deleted)
	assert.Contains(t, repo.blocks, outside.ID)

	_, err = svc.BulkDeleteByRange(context.Background(), tenantID, &models.BulkDeleteRequest{
		StartDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
