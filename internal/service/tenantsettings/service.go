package tenantsettings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/tenantsettings/models"
)

// Service сервис для работы с настройками тенанта
// Профиль тенанта принадлежит внешней системе и приходит событиями;
// локально редактируются только буферные интервалы
type Service struct {
	tenantRepo TenantRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса настроек тенанта
func NewService(tenantRepo TenantRepository, logger Logger) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// GetSettings получает полные настройки тенанта
func (s *Service) GetSettings(ctx context.Context, tenantID uuid.UUID) (*models.TenantSettingsResponse, error) {
	tenant, err := s.getTenant(ctx, "GetSettings", tenantID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainTenant(tenant), nil
}

// GetBufferSettings получает буферные настройки тенанта
func (s *Service) GetBufferSettings(ctx context.Context, tenantID uuid.UUID) (*models.BufferSettingsResponse, error) {
	tenant, err := s.getTenant(ctx, "GetBufferSettings", tenantID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBuffers(tenant), nil
}

// UpdateBufferSettings частично обновляет буферные интервалы тенанта
func (s *Service) UpdateBufferSettings(ctx context.Context, tenantID uuid.UUID, req *models.UpdateBufferSettingsRequest) (*models.BufferSettingsResponse, error) {
	s.logger.Info("UpdateBufferSettings: tenant=%s", tenantID)

	if req.BufferBeforeMinutes == nil && req.BufferAfterMinutes == nil {
		return nil, fmt.Errorf("%w: at least one buffer setting must be provided", ErrInvalidInput)
	}

	if err := validateBuffer("bufferBeforeMinutes", req.BufferBeforeMinutes); err != nil {
		s.logger.Warn("UpdateBufferSettings: %v for tenant=%s", err, tenantID)
		return nil, err
	}
	if err := validateBuffer("bufferAfterMinutes", req.BufferAfterMinutes); err != nil {
		s.logger.Warn("UpdateBufferSettings: %v for tenant=%s", err, tenantID)
		return nil, err
	}

	tenant, err := s.getTenant(ctx, "UpdateBufferSettings", tenantID)
	if err != nil {
		return nil, err
	}

	patch := domain.BufferSettingsPatch{
		BufferBeforeMinutes: req.BufferBeforeMinutes,
		BufferAfterMinutes:  req.BufferAfterMinutes,
	}
	patched := patch.Apply(*tenant)

	updated, err := s.tenantRepo.UpdateBufferSettings(ctx, tenantID, patched.BufferBeforeMinutes, patched.BufferAfterMinutes)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		s.logger.Error("UpdateBufferSettings: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: UpdateBufferSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBufferSettings: tenant=%s, before=%d, after=%d",
		tenantID, updated.BufferBeforeMinutes, updated.BufferAfterMinutes)

	return models.FromDomainBuffers(updated), nil
}

// ResetBufferSettings сбрасывает оба буфера тенанта в ноль
func (s *Service) ResetBufferSettings(ctx context.Context, tenantID uuid.UUID) error {
	s.logger.Info("ResetBufferSettings: tenant=%s", tenantID)

	_, err := s.tenantRepo.UpdateBufferSettings(ctx, tenantID, 0, 0)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("ResetBufferSettings: tenant id=%s not found", tenantID)
			return ErrTenantNotFound
		}
		s.logger.Error("ResetBufferSettings: repository error for tenant=%s: %v", tenantID, err)
		return fmt.Errorf("%w: ResetBufferSettings - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) getTenant(ctx context.Context, op string, tenantID uuid.UUID) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("%s: tenant id=%s not found", op, tenantID)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("%s: repository error for tenant=%s: %v", op, tenantID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return tenant, nil
}

func validateBuffer(field string, value *int) error {
	if value == nil {
		return nil
	}
	if *value < domain.MinBufferMinutes || *value > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: %s must be in range [%d, %d]",
			ErrInvalidInput, field, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	return nil
}
