package workinghours

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	// Create создает запись рабочих часов
	Create(ctx context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error)
	// CreateBatch создает набор записей одним запросом
	CreateBatch(ctx context.Context, hours []*domain.WorkingHours) error
	// GetByTenant получает все записи рабочих часов тенанта
	GetByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.WorkingHours, error)
	// Delete удаляет запись рабочих часов
	Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error
	// DeleteByTenant удаляет все записи рабочих часов тенанта
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
