package get_available_ranges

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	// GetByID получает тенанта по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
}

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	// GetByTenant получает все записи рабочих часов тенанта
	GetByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.WorkingHours, error)
}

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	// GetByTenantAndDateRange получает блокировки, пересекающиеся с периодом
	GetByTenantAndDateRange(ctx context.Context, tenantID uuid.UUID, start, end time.Time) ([]*domain.TimeBlock, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByTenantAndDateRange получает неотмененные бронирования, пересекающиеся с периодом
	GetByTenantAndDateRange(ctx context.Context, tenantID uuid.UUID, start, end time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
