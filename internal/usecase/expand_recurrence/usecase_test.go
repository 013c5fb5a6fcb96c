package expand_recurrence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakeTimeBlockRepo struct {
	blocks        []*domain.TimeBlock
	deletedCount  int64
	deletedSeries []uuid.UUID
}

func (f *fakeTimeBlockRepo) CreateBatch(_ context.Context, blocks []*domain.TimeBlock) error {
	f.blocks = append(f.blocks, blocks...)
	return nil
}

func (f *fakeTimeBlockRepo) GetByRecurrenceID(_ context.Context, tenantID uuid.UUID, recurrenceID uuid.UUID) ([]*domain.TimeBlock, error) {
	var result []*domain.TimeBlock
	for _, b := range f.blocks {
		if b.TenantID == tenantID && b.RecurrenceID != nil && *b.RecurrenceID == recurrenceID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeTimeBlockRepo) DeleteByRecurrenceID(_ context.Context, _ uuid.UUID, recurrenceID uuid.UUID) (int64, error) {
	f.deletedSeries = append(f.deletedSeries, recurrenceID)
	return f.deletedCount, nil
}

// fakeTxManager считает, в какой транзакции выполнялась работа
type fakeTxManager struct {
	doCalls           int
	serializableCalls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.doCalls++
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.serializableCalls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	t.Run("persists the whole series in one transaction", func(t *testing.T) {
		repo := &fakeTimeBlockRepo{}
		txMgr := &fakeTxManager{}
		uc := NewUseCase(repo, txMgr, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			TenantID:      uuid.New(),
			StartDateTime: dt(t, "2025-06-02 10:00:00"),
			EndDateTime:   dt(t, "2025-06-02 11:00:00"),
			Type:          domain.BlockTypeBreak,
			Pattern: domain.RecurrencePattern{
				Frequency:      domain.FrequencyDaily,
				Interval:       1,
				MaxOccurrences: ptr.Ptr(3),
			},
		})

		require.NoError(t, err)
		assert.Len(t, resp.Blocks, 3)
		assert.Len(t, repo.blocks, 3)
		assert.Equal(t, 1, txMgr.doCalls)
	})

	t.Run("invalid pattern maps to input sentinel", func(t *testing.T) {
		repo := &fakeTimeBlockRepo{}
		uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

		// База - понедельник, в селекторе только вторник
		_, err := uc.Execute(context.Background(), &Request{
			TenantID:      uuid.New(),
			StartDateTime: dt(t, "2025-06-02 10:00:00"),
			EndDateTime:   dt(t, "2025-06-02 11:00:00"),
			Type:          domain.BlockTypeBreak,
			Pattern: domain.RecurrencePattern{
				Frequency:      domain.FrequencyWeekly,
				Interval:       1,
				DaysOfWeek:     []time.Weekday{time.Tuesday},
				MaxOccurrences: ptr.Ptr(3),
			},
		})

		require.ErrorIs(t, err, ErrInvalidInput)

		var fieldErrs domain.ValidationErrors
		require.ErrorAs(t, err, &fieldErrs)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "pattern.daysOfWeek", fieldErrs[0].Field)

		assert.Empty(t, repo.blocks)
	})
}

func TestUseCase_Regenerate(t *testing.T) {
	baseReq := func() *RegenerateRequest {
		return &RegenerateRequest{
			TenantID:      uuid.New(),
			RecurrenceID:  uuid.New(),
			StartDateTime: dt(t, "2025-06-02 10:00:00"),
			EndDateTime:   dt(t, "2025-06-02 11:00:00"),
			Type:          domain.BlockTypeBreak,
			Pattern: domain.RecurrencePattern{
				Frequency:      domain.FrequencyDaily,
				Interval:       1,
				MaxOccurrences: ptr.Ptr(2),
			},
		}
	}

	t.Run("rebuilds the series in a serializable transaction", func(t *testing.T) {
		repo := &fakeTimeBlockRepo{deletedCount: 4}
		txMgr := &fakeTxManager{}
		uc := NewUseCase(repo, txMgr, nopLogger{})

		req := baseReq()
		resp, err := uc.Regenerate(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, req.RecurrenceID, resp.RecurrenceID)
		assert.Len(t, resp.Blocks, 2)
		assert.Equal(t, []uuid.UUID{req.RecurrenceID}, repo.deletedSeries)
		assert.Equal(t, 1, txMgr.serializableCalls)
		assert.Equal(t, 0, txMgr.doCalls)
	})

	t.Run("unknown series", func(t *testing.T) {
		repo := &fakeTimeBlockRepo{deletedCount: 0}
		uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

		_, err := uc.Regenerate(context.Background(), baseReq())
		assert.ErrorIs(t, err, ErrSeriesNotFound)
		assert.Empty(t, repo.blocks)
	})

	t.Run("invalid pattern maps to input sentinel", func(t *testing.T) {
		repo := &fakeTimeBlockRepo{deletedCount: 4}
		uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

		req := baseReq()
		req.Pattern.Interval = 0

		_, err := uc.Regenerate(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, repo.deletedSeries)
	})
}
