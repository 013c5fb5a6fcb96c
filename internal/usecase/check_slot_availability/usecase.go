package check_slot_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/tenant"
	whRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
)

// UseCase use case проверки слота на конфликты
type UseCase struct {
	tenantRepo       TenantRepository
	workingHoursRepo WorkingHoursRepository
	timeBlockRepo    TimeBlockRepository
	bookingRepo      BookingRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tenantRepo TenantRepository,
	workingHoursRepo WorkingHoursRepository,
	timeBlockRepo TimeBlockRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:       tenantRepo,
		workingHoursRepo: workingHoursRepo,
		timeBlockRepo:    timeBlockRepo,
		bookingRepo:      bookingRepo,
		logger:           logger,
	}
}

// Execute выполняет проверку доступности слота
// Неизвестный тенант трактуется как недоступность с одним конфликтом
// working_hours на весь запрошенный интервал, без ошибки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlotAvailability: tenant=%s, start=%s, end=%s",
		req.TenantID,
		req.StartDateTime.Format(domain.DateTimeFormat),
		req.EndDateTime.Format(domain.DateTimeFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlotAvailability: validation failed: %v", err)
		return nil, err
	}

	candidate := domain.TimeRange{Start: req.StartDateTime, End: req.EndDateTime}

	tenant, err := uc.tenantRepo.GetByID(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("CheckSlotAvailability: tenant id=%s not found", req.TenantID)
			return &Response{
				IsAvailable: false,
				Conflicts: []domain.Conflict{{
					Type:         domain.ConflictWorkingHours,
					OverlapStart: candidate.Start,
					OverlapEnd:   candidate.End,
				}},
			}, nil
		}
		uc.logger.Error("CheckSlotAvailability: failed to get tenant id=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	padded := paddedRange(candidate, tenant.BufferBeforeMinutes, tenant.BufferAfterMinutes)
	conflicts := make([]domain.Conflict, 0)

	// 1. Рабочие часы дня начала кандидата, без буферов
	wh, err := uc.workingHoursRepo.GetByTenantAndDay(ctx, req.TenantID, req.StartDateTime.Weekday())
	if err != nil && !errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
		uc.logger.Error("CheckSlotAvailability: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	whConflicts, err := detectWorkingHoursConflicts(candidate, wh)
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: failed to build working window: %v", err)
		return nil, fmt.Errorf("%w: failed to build working window: %v", ErrInternal, err)
	}
	conflicts = append(conflicts, whConflicts...)

	// 2. Блокировки времени против расширенного интервала
	blocks, err := uc.timeBlockRepo.GetByTenantAndDateRange(ctx, req.TenantID, padded.Start, padded.End)
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: failed to get time blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get time blocks: %v", ErrInternal, err)
	}
	conflicts = append(conflicts, detectTimeBlockConflicts(padded, blocks)...)

	// 3. Бронирования с буферами против расширенного интервала
	bookings, err := uc.bookingRepo.GetByTenantAndDateRange(ctx, req.TenantID, padded.Start, padded.End)
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	conflicts = append(conflicts, detectBookingConflicts(padded, bookings, tenant.BufferBeforeMinutes, tenant.BufferAfterMinutes)...)

	uc.logger.Info("CheckSlotAvailability: tenant=%s, available=%t, conflicts=%d",
		req.TenantID, len(conflicts) == 0, len(conflicts))

	return &Response{
		IsAvailable: len(conflicts) == 0,
		Conflicts:   conflicts,
	}, nil
}
