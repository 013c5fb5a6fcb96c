package tenantsettings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	// GetByID получает тенанта по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	// UpdateBufferSettings обновляет буферные интервалы тенанта
	UpdateBufferSettings(ctx context.Context, id uuid.UUID, bufferBefore, bufferAfter int) (*domain.Tenant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
