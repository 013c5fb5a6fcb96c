package events

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create сохраняет бронирование, дубликаты молча пропускаются
	Create(ctx context.Context, b *domain.Booking) error
	// UpdateStatus меняет статус бронирования
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	// Create сохраняет тенанта, дубликаты молча пропускаются
	Create(ctx context.Context, t *domain.Tenant) error
	// UpdateProfile обновляет профильные поля тенанта
	UpdateProfile(ctx context.Context, t *domain.Tenant) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
