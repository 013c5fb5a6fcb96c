package timeblocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	// Create создает блокировку времени
	Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	// GetByID получает блокировку по идентификатору
	GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.TimeBlock, error)
	// GetByTenant получает блокировки тенанта с пагинацией
	GetByTenant(ctx context.Context, tenantID uuid.UUID, period *domain.DateRange, limit, offset int) ([]*domain.TimeBlock, int, error)
	// GetByRecurrenceID получает все блокировки серии повторений
	GetByRecurrenceID(ctx context.Context, tenantID uuid.UUID, recurrenceID uuid.UUID) ([]*domain.TimeBlock, error)
	// Update перезаписывает изменяемые поля блокировки
	Update(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	// Delete удаляет блокировку
	Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error
	// DeleteByRecurrenceID удаляет все блокировки серии
	DeleteByRecurrenceID(ctx context.Context, tenantID uuid.UUID, recurrenceID uuid.UUID) (int64, error)
	// DeleteByDateRange удаляет блокировки, начинающиеся в периоде
	DeleteByDateRange(ctx context.Context, tenantID uuid.UUID, start, end time.Time) (int64, error)
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
