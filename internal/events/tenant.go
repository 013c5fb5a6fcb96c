package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// TenantEventHandler зеркалирует события TenantService в локальную БД
// Буферные настройки и таймзона принадлежат этому сервису и событиями
// не перетираются
type TenantEventHandler struct {
	tenantRepo TenantRepository
	logger     Logger
}

// NewTenantEventHandler создает новый обработчик событий тенантов
func NewTenantEventHandler(tenantRepo TenantRepository, logger Logger) *TenantEventHandler {
	return &TenantEventHandler{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// HandleCreated сохраняет нового тенанта с нулевыми буферами
func (h *TenantEventHandler) HandleCreated(ctx context.Context, payload []byte) error {
	var event TenantCreatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("events: unmarshal tenant created event: %w", err)
	}

	h.logger.Info("TenantCreated: tenant=%s, name=%q", event.TenantID, event.BusinessName)

	tenant := &domain.Tenant{
		ID:           event.TenantID,
		BusinessName: event.BusinessName,
		Email:        event.BusinessEmail,
		Phone:        event.BusinessPhone,
		Address:      event.Address,
	}

	if err := h.tenantRepo.Create(ctx, tenant); err != nil {
		return fmt.Errorf("events: create tenant %s: %w", event.TenantID, err)
	}

	return nil
}

// HandleUpdated обновляет профильные поля существующего тенанта
// Неизвестный тенант логируется и пропускается
func (h *TenantEventHandler) HandleUpdated(ctx context.Context, payload []byte) error {
	var event TenantUpdatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("events: unmarshal tenant updated event: %w", err)
	}

	h.logger.Info("TenantUpdated: tenant=%s, name=%q", event.TenantID, event.BusinessName)

	tenant := &domain.Tenant{
		ID:           event.TenantID,
		BusinessName: event.BusinessName,
		Email:        event.BusinessEmail,
		Phone:        event.BusinessPhone,
		Address:      event.Address,
	}

	err := h.tenantRepo.UpdateProfile(ctx, tenant)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			h.logger.Warn("TenantUpdated: tenant id=%s not found, skipping", event.TenantID)
			return nil
		}
		return fmt.Errorf("events: update tenant %s: %w", event.TenantID, err)
	}

	return nil
}

// NewTenantConsumers создает консьюмеры топиков тенантов
func NewTenantConsumers(cfg ConsumerConfig, handler *TenantEventHandler, m *metrics.Metrics, logger Logger) []*Consumer {
	return []*Consumer{
		newConsumer(cfg, TopicTenantCreated, handler.HandleCreated, m, logger),
		newConsumer(cfg, TopicTenantUpdated, handler.HandleUpdated, m, logger),
	}
}
