package expand_recurrence

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UseCase use case материализации повторяющихся серий блокировок
// Паттерн не хранится: серия сразу разворачивается в записи time_blocks
// с общим recurrence_id
type UseCase struct {
	timeBlockRepo TimeBlockRepository
	txManager     TxManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeBlockRepo TimeBlockRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		timeBlockRepo: timeBlockRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute разворачивает паттерн в серию блокировок и сохраняет её одной транзакцией
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExpandRecurrence: tenant=%s, frequency=%s, interval=%d, start=%s",
		req.TenantID, req.Pattern.Frequency, req.Pattern.Interval,
		req.StartDateTime.Format(domain.DateTimeFormat))

	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("ExpandRecurrence: validation failed: %v", err)
		return nil, err
	}

	recurrenceID := uuid.New()
	blocks := uc.buildSeries(recurrenceID, req.TenantID, req.StartDateTime, req.EndDateTime, req.Type, req.Reason, req.Pattern)

	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		return uc.timeBlockRepo.CreateBatch(ctx, blocks)
	})
	if err != nil {
		uc.logger.Error("ExpandRecurrence: failed to persist series tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to persist series: %v", ErrInternal, err)
	}

	uc.logger.Info("ExpandRecurrence: created series id=%s with %d blocks for tenant=%s",
		recurrenceID, len(blocks), req.TenantID)

	return &Response{RecurrenceID: recurrenceID, Blocks: blocks}, nil
}

// Regenerate перестраивает существующую серию: старые вхождения удаляются,
// новые создаются от переданной базовой блокировки в одной сериализуемой
// транзакции, чтобы конкурентная регенерация не оставила смешанную серию
func (uc *UseCase) Regenerate(ctx context.Context, req *RegenerateRequest) (*Response, error) {
	uc.logger.Info("ExpandRecurrence: regenerate series id=%s for tenant=%s", req.RecurrenceID, req.TenantID)

	createReq := &Request{
		TenantID:      req.TenantID,
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		Type:          req.Type,
		Reason:        req.Reason,
		Pattern:       req.Pattern,
	}
	if err := validateRequest(createReq, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("ExpandRecurrence: regenerate validation failed: %v", err)
		return nil, err
	}

	blocks := uc.buildSeries(req.RecurrenceID, req.TenantID, req.StartDateTime, req.EndDateTime, req.Type, req.Reason, req.Pattern)

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		deleted, err := uc.timeBlockRepo.DeleteByRecurrenceID(ctx, req.TenantID, req.RecurrenceID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrSeriesNotFound
		}
		return uc.timeBlockRepo.CreateBatch(ctx, blocks)
	})
	if err != nil {
		if errors.Is(err, ErrSeriesNotFound) {
			uc.logger.Warn("ExpandRecurrence: series id=%s not found for tenant=%s", req.RecurrenceID, req.TenantID)
			return nil, err
		}
		uc.logger.Error("ExpandRecurrence: failed to regenerate series id=%s: %v", req.RecurrenceID, err)
		return nil, fmt.Errorf("%w: failed to regenerate series: %v", ErrInternal, err)
	}

	uc.logger.Info("ExpandRecurrence: regenerated series id=%s with %d blocks", req.RecurrenceID, len(blocks))

	return &Response{RecurrenceID: req.RecurrenceID, Blocks: blocks}, nil
}

// DeleteSeries удаляет все вхождения серии, возвращает число удаленных блокировок
func (uc *UseCase) DeleteSeries(ctx context.Context, tenantID, recurrenceID uuid.UUID) (int64, error) {
	deleted, err := uc.timeBlockRepo.DeleteByRecurrenceID(ctx, tenantID, recurrenceID)
	if err != nil {
		uc.logger.Error("ExpandRecurrence: failed to delete series id=%s: %v", recurrenceID, err)
		return 0, fmt.Errorf("%w: failed to delete series: %v", ErrInternal, err)
	}

	if deleted == 0 {
		uc.logger.Warn("ExpandRecurrence: series id=%s not found for tenant=%s", recurrenceID, tenantID)
		return 0, ErrSeriesNotFound
	}

	uc.logger.Info("ExpandRecurrence: deleted series id=%s (%d blocks) for tenant=%s", recurrenceID, deleted, tenantID)

	return deleted, nil
}

// buildSeries собирает базовую блокировку и развернутые вхождения,
// отсортированные по началу
func (uc *UseCase) buildSeries(
	recurrenceID uuid.UUID,
	tenantID uuid.UUID,
	baseStart, baseEnd time.Time,
	blockType domain.TimeBlockType,
	reason *string,
	pattern domain.RecurrencePattern,
) []*domain.TimeBlock {
	occurrences := expandOccurrences(baseStart, baseEnd, pattern)

	blocks := make([]*domain.TimeBlock, 0, len(occurrences)+1)
	blocks = append(blocks, &domain.TimeBlock{
		ID:            uuid.New(),
		TenantID:      tenantID,
		StartDateTime: baseStart,
		EndDateTime:   baseEnd,
		Type:          blockType,
		Reason:        reason,
		RecurrenceID:  &recurrenceID,
	})

	for _, occ := range occurrences {
		blocks = append(blocks, &domain.TimeBlock{
			ID:            uuid.New(),
			TenantID:      tenantID,
			StartDateTime: occ.Start,
			EndDateTime:   occ.End,
			Type:          blockType,
			Reason:        reason,
			RecurrenceID:  &recurrenceID,
		})
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].StartDateTime.Before(blocks[j].StartDateTime)
	})

	return blocks
}
