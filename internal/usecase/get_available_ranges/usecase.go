package get_available_ranges

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/tenant"
)

// UseCase use case расчета свободных интервалов тенанта за период
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

// Execute выполняет use case расчета свободных интервалов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRanges: tenant=%s, start=%s, end=%s",
		req.TenantID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRanges: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тенанта с его буферными настройками
	tenant, err := uc.tenantRepo.GetByID(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("GetAvailableRanges: tenant id=%s not found", req.TenantID)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetAvailableRanges: failed to get tenant id=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	periodStart := startOfDay(req.StartDate)
	periodEnd := startOfDay(req.EndDate).Add(24*time.Hour - time.Second)

	// 3. Рабочие часы на все дни недели одним запросом
	workingHours, err := uc.workingHoursRepo.GetByTenant(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetAvailableRanges: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	whByDay := make(map[time.Weekday]*domain.WorkingHours, len(workingHours))
	for _, wh := range workingHours {
		whByDay[wh.Day] = wh
	}

	// 4. Блокировки и бронирования, пересекающиеся с периодом
	blocks, err := uc.timeBlockRepo.GetByTenantAndDateRange(ctx, req.TenantID, periodStart, periodEnd)
	if err != nil {
		uc.logger.Error("GetAvailableRanges: failed to get time blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get time blocks: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByTenantAndDateRange(ctx, req.TenantID, periodStart, periodEnd)
	if err != nil {
		uc.logger.Error("GetAvailableRanges: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Считаем доступность по дням
	ranges := make([]domain.TimeRange, 0)

	for day := periodStart; !day.After(periodEnd); day = day.AddDate(0, 0, 1) {
		dayRanges, err := calculateDayAvailability(
			day,
			whByDay[day.Weekday()],
			blocks,
			bookings,
			tenant.BufferBeforeMinutes,
			tenant.BufferAfterMinutes,
		)
		if err != nil {
			uc.logger.Error("GetAvailableRanges: failed to calculate day %s: %v",
				day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to calculate availability: %v", ErrInternal, err)
		}

		ranges = append(ranges, dayRanges...)
	}

	// 6. Итоговая сортировка по началу интервала
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Start.Before(ranges[j].Start)
	})

	uc.logger.Info("GetAvailableRanges: tenant=%s, %d free ranges in period", req.TenantID, len(ranges))

	return &Response{TenantID: req.TenantID, Ranges: ranges}, nil
}
