package timeblocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	timeblockRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/timeblock"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

// Service сервис для работы с блокировками времени
type Service struct {
	timeBlockRepo TimeBlockRepository
	txManager     TxManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса блокировок времени
func NewService(
	timeBlockRepo TimeBlockRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		timeBlockRepo: timeBlockRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// Create создает одиночную блокировку времени
// Повторяющиеся серии создаются отдельным usecase развертки паттерна
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req *models.CreateTimeBlockRequest) (*models.TimeBlockResponse, error) {
	s.logger.Info("Create: tenant=%s, start=%s, end=%s, type=%s",
		tenantID, req.StartDateTime.Format(domain.DateTimeFormat),
		req.EndDateTime.Format(domain.DateTimeFormat), req.Type)

	blockType, err := domain.ParseTimeBlockType(req.Type)
	if err != nil {
		s.logger.Warn("Create: invalid type=%s for tenant=%s", req.Type, tenantID)
		return nil, fmt.Errorf("%w: type must be one of: vacation, break, custom", ErrInvalidInput)
	}

	if !req.StartDateTime.Before(req.EndDateTime) {
		s.logger.Warn("Create: invalid period for tenant=%s", tenantID)
		return nil, fmt.Errorf("%w: startDateTime must be before endDateTime", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	block := &domain.TimeBlock{
		ID:            uuid.New(),
		TenantID:      tenantID,
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		Type:          blockType,
		Reason:        req.Reason,
	}

	created, err := s.timeBlockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created time block id=%s for tenant=%s", created.ID, tenantID)
	return models.FromDomainTimeBlock(created), nil
}

// GetByID получает блокировку времени тенанта
func (s *Service) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.TimeBlockResponse, error) {
	block, err := s.timeBlockRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("GetByID: time block id=%s not found for tenant=%s", id, tenantID)
			return nil, ErrTimeBlockNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeBlock(block), nil
}

// List получает страницу блокировок тенанта
// Фильтр по периоду включает только блокировки, целиком лежащие в нём
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, req *models.ListTimeBlocksRequest) (*models.TimeBlockListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}
	if limit > domain.MaxPageLimit {
		limit = domain.MaxPageLimit
	}

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	var period *domain.DateRange
	switch {
	case req.StartDate != nil && req.EndDate != nil:
		if req.EndDate.Before(*req.StartDate) {
			return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
		}
		period = &domain.DateRange{Start: *req.StartDate, End: *req.EndDate}
	case req.StartDate != nil || req.EndDate != nil:
		return nil, fmt.Errorf("%w: startDate and endDate must be used together", ErrInvalidInput)
	}

	blocks, total, err := s.timeBlockRepo.GetByTenant(ctx, tenantID, period, limit, offset)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d/%d time blocks for tenant=%s", len(blocks), total, tenantID)
	return models.FromDomainTimeBlockList(blocks, total, limit, offset), nil
}

// Update частично обновляет блокировку
// Для повторяющейся блокировки editPattern=true применяет изменения ко всей
// серии: время суток заменяется, дата каждого вхождения сохраняется
func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req *models.UpdateTimeBlockRequest) (*models.TimeBlockResponse, error) {
	s.logger.Info("Update: tenant=%s, id=%s, editPattern=%t", tenantID, id, req.EditPattern)

	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("Update: invalid patch for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	if patch.Reason != nil && len(*patch.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	block, err := s.timeBlockRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("Update: time block id=%s not found for tenant=%s", id, tenantID)
			return nil, ErrTimeBlockNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if block.IsRecurring() && req.EditPattern {
		return s.updateSeries(ctx, tenantID, block, patch)
	}

	updated, err := s.applyPatch(ctx, block, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: updated time block id=%s for tenant=%s", id, tenantID)
	return models.FromDomainTimeBlock(updated), nil
}

// updateSeries применяет патч ко всем вхождениям серии в одной транзакции
func (s *Service) updateSeries(ctx context.Context, tenantID uuid.UUID, block *domain.TimeBlock, patch domain.TimeBlockPatch) (*models.TimeBlockResponse, error) {
	series, err := s.timeBlockRepo.GetByRecurrenceID(ctx, tenantID, *block.RecurrenceID)
	if err != nil {
		s.logger.Error("Update: failed to get series id=%s: %v", *block.RecurrenceID, err)
		return nil, fmt.Errorf("%w: Update - failed to get series: %v", ErrInternal, err)
	}

	var updatedTarget *domain.TimeBlock

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, member := range series {
			patched, err := patch.Apply(*member)
			if err != nil {
				return err
			}

			updated, err := s.timeBlockRepo.Update(ctx, &patched)
			if err != nil {
				return err
			}

			if updated.ID == block.ID {
				updatedTarget = updated
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Update: failed to update series id=%s: %v", *block.RecurrenceID, err)
		return nil, fmt.Errorf("%w: Update - failed to update series: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated series id=%s (%d blocks) for tenant=%s",
		*block.RecurrenceID, len(series), tenantID)

	if updatedTarget == nil {
		updatedTarget = block
	}
	return models.FromDomainTimeBlock(updatedTarget), nil
}

func (s *Service) applyPatch(ctx context.Context, block *domain.TimeBlock, patch domain.TimeBlockPatch) (*domain.TimeBlock, error) {
	patched, err := patch.Apply(*block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !patched.StartDateTime.Before(patched.EndDateTime) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	updated, err := s.timeBlockRepo.Update(ctx, &patched)
	if err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			return nil, ErrTimeBlockNotFound
		}
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return updated, nil
}

// Delete удаляет блокировку
// Для повторяющейся блокировки deletePattern=true удаляет всю серию
func (s *Service) Delete(ctx context.Context, tenantID, id uuid.UUID, deletePattern bool) error {
	s.logger.Info("Delete: tenant=%s, id=%s, deletePattern=%t", tenantID, id, deletePattern)

	block, err := s.timeBlockRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("Delete: time block id=%s not found for tenant=%s", id, tenantID)
			return ErrTimeBlockNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if block.IsRecurring() && deletePattern {
		deleted, err := s.timeBlockRepo.DeleteByRecurrenceID(ctx, tenantID, *block.RecurrenceID)
		if err != nil {
			s.logger.Error("Delete: failed to delete series id=%s: %v", *block.RecurrenceID, err)
			return fmt.Errorf("%w: Delete - failed to delete series: %v", ErrInternal, err)
		}
		s.logger.Info("Delete: deleted series id=%s (%d blocks) for tenant=%s",
			*block.RecurrenceID, deleted, tenantID)
		return nil
	}

	if err := s.timeBlockRepo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			return ErrTimeBlockNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted time block id=%s for tenant=%s", id, tenantID)
	return nil
}

// BulkDeleteByRange удаляет блокировки тенанта, начинающиеся в периоде
func (s *Service) BulkDeleteByRange(ctx context.Context, tenantID uuid.UUID, req *models.BulkDeleteRequest) (*models.BulkDeleteResponse, error) {
	s.logger.Info("BulkDeleteByRange: tenant=%s, start=%s, end=%s",
		tenantID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	deleted, err := s.timeBlockRepo.DeleteByDateRange(ctx, tenantID, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("BulkDeleteByRange: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: BulkDeleteByRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BulkDeleteByRange: deleted %d time blocks for tenant=%s", deleted, tenantID)
	return &models.BulkDeleteResponse{Deleted: deleted}, nil
}
