package workinghours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	whRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Service сервис для работы с рабочими часами тенанта
type Service struct {
	workingHoursRepo WorkingHoursRepository
	txManager        TxManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(
	workingHoursRepo WorkingHoursRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		workingHoursRepo: workingHoursRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Create создает рабочие часы на один день недели
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req *models.CreateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	s.logger.Info("Create: tenant=%s, day=%d, start=%s, end=%s", tenantID, req.Day, req.StartTime, req.EndTime)

	if err := validateDay(req.Day); err != nil {
		s.logger.Warn("Create: %v for tenant=%s", err, tenantID)
		return nil, err
	}

	wh, err := req.ToDomain(tenantID)
	if err != nil {
		s.logger.Warn("Create: invalid time for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// start == end означает круглосуточную доступность и допустим,
	// start > end - нет
	if wh.StartTime.IsAfter(wh.EndTime) {
		return nil, fmt.Errorf("%w: startTime must not be after endTime", ErrInvalidInput)
	}

	if wh.MaxConcurrentBookings < 1 {
		return nil, fmt.Errorf("%w: maxConcurrentBookings must be at least 1", ErrInvalidInput)
	}

	created, err := s.workingHoursRepo.Create(ctx, wh)
	if err != nil {
		if errors.Is(err, whRepo.ErrDuplicateDay) {
			s.logger.Warn("Create: duplicate day=%d for tenant=%s", req.Day, tenantID)
			return nil, ErrDuplicateDay
		}
		s.logger.Error("Create: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created working hours id=%s for tenant=%s", created.ID, tenantID)
	return models.FromDomainWorkingHours(created), nil
}

// GetByTenant получает расписание тенанта, отсортированное по дню недели
func (s *Service) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*models.WorkingHoursListResponse, error) {
	hours, err := s.workingHoursRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetByTenant: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetByTenant - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWorkingHoursList(hours), nil
}

// SetWeeklySchedule заменяет всё недельное расписание тенанта
// Прежние записи удаляются; дни с isWorkFree остаются без записей
// Вся замена выполняется одной транзакцией
func (s *Service) SetWeeklySchedule(ctx context.Context, tenantID uuid.UUID, req *models.SetWeeklyScheduleRequest) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("SetWeeklySchedule: tenant=%s, entries=%d", tenantID, len(req.Schedule))

	toCreate, createdDays, err := s.buildSchedule(tenantID, req)
	if err != nil {
		s.logger.Warn("SetWeeklySchedule: validation failed for tenant=%s: %v", tenantID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.workingHoursRepo.DeleteByTenant(ctx, tenantID); err != nil {
			return err
		}
		return s.workingHoursRepo.CreateBatch(ctx, toCreate)
	})
	if err != nil {
		if errors.Is(err, whRepo.ErrDuplicateDay) {
			s.logger.Warn("SetWeeklySchedule: duplicate days in schedule for tenant=%s", tenantID)
			return nil, ErrDuplicateDay
		}
		s.logger.Error("SetWeeklySchedule: failed to replace schedule for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: SetWeeklySchedule - failed to replace schedule: %v", ErrInternal, err)
	}

	freeDays := make([]string, 0)
	created := make(map[time.Weekday]bool, len(createdDays))
	for _, d := range createdDays {
		created[d] = true
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if !created[d] {
			freeDays = append(freeDays, d.String())
		}
	}

	createdNames := make([]string, 0, len(createdDays))
	for _, d := range createdDays {
		createdNames = append(createdNames, d.String())
	}

	s.logger.Info("SetWeeklySchedule: created %d working hours for tenant=%s", len(toCreate), tenantID)

	return &models.WeeklyScheduleResponse{
		CreatedCount: len(toCreate),
		CreatedDays:  createdNames,
		FreeDays:     freeDays,
	}, nil
}

// buildSchedule валидирует запрос и собирает записи рабочих часов
func (s *Service) buildSchedule(tenantID uuid.UUID, req *models.SetWeeklyScheduleRequest) ([]*domain.WorkingHours, []time.Weekday, error) {
	if len(req.Schedule) == 0 {
		return nil, nil, fmt.Errorf("%w: schedule must not be empty", ErrInvalidInput)
	}

	toCreate := make([]*domain.WorkingHours, 0)
	createdDays := make([]time.Weekday, 0)
	seen := make(map[time.Weekday]bool)

	for _, entry := range req.Schedule {
		if len(entry.Days) == 0 {
			return nil, nil, fmt.Errorf("%w: schedule entry must list at least one day", ErrInvalidInput)
		}

		if !entry.IsWorkFree && (entry.StartTime == nil || entry.EndTime == nil) {
			return nil, nil, fmt.Errorf("%w: startTime and endTime are required for work days", ErrInvalidInput)
		}

		var startTime, endTime types.TimeOfDay
		if !entry.IsWorkFree {
			var err error
			startTime, err = types.ParseTimeOfDay(*entry.StartTime)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			endTime, err = types.ParseTimeOfDay(*entry.EndTime)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			if startTime.IsAfter(endTime) {
				return nil, nil, fmt.Errorf("%w: startTime must not be after endTime", ErrInvalidInput)
			}
		}

		maxConcurrent := 1
		if entry.MaxConcurrentBookings != nil {
			if *entry.MaxConcurrentBookings < 1 {
				return nil, nil, fmt.Errorf("%w: maxConcurrentBookings must be at least 1", ErrInvalidInput)
			}
			maxConcurrent = *entry.MaxConcurrentBookings
		}

		for _, rawDay := range entry.Days {
			if err := validateDay(rawDay); err != nil {
				return nil, nil, err
			}

			day := time.Weekday(rawDay)
			if seen[day] {
				return nil, nil, fmt.Errorf("%w: day %s is listed more than once", ErrInvalidInput, day)
			}
			seen[day] = true

			if entry.IsWorkFree {
				continue
			}

			toCreate = append(toCreate, &domain.WorkingHours{
				ID:                    uuid.New(),
				TenantID:              tenantID,
				Day:                   day,
				StartTime:             startTime,
				EndTime:               endTime,
				MaxConcurrentBookings: maxConcurrent,
			})
			createdDays = append(createdDays, day)
		}
	}

	return toCreate, createdDays, nil
}

// Delete удаляет рабочие часы тенанта
func (s *Service) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	s.logger.Info("Delete: tenant=%s, id=%s", tenantID, id)

	if err := s.workingHoursRepo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, whRepo.ErrWorkingHoursNotFound) {
			s.logger.Warn("Delete: working hours id=%s not found for tenant=%s", id, tenantID)
			return ErrWorkingHoursNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted working hours id=%s for tenant=%s", id, tenantID)
	return nil
}

func validateDay(day int) error {
	if day < int(time.Sunday) || day > int(time.Saturday) {
		return fmt.Errorf("%w: day must be in range [0, 6]", ErrInvalidInput)
	}
	return nil
}
