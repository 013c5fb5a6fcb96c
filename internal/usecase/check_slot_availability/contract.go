package check_slot_availability

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
	// GetByTenantAndDay получает рабочие часы тенанта на день недели
	GetByTenantAndDay(ctx context.Context, tenantID uuid.UUID, day time.Weekday) (*domain.WorkingHours, error)
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
