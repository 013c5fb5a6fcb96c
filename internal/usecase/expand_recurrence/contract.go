package expand_recurrence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	// CreateBatch создает набор блокировок одним запросом
	CreateBatch(ctx context.Context, blocks []*domain.TimeBlock) error
	// GetByRecurrenceID получает все блокировки серии повторений
	GetByRecurrenceID(ctx context.Context, tenantID uuid.UUID, recurrenceID uuid.UUID) ([]*domain.TimeBlock, error)
	// DeleteByRecurrenceID удаляет все блокировки серии, возвращает число удаленных
	DeleteByRecurrenceID(ctx context.Context, tenantID uuid.UUID, recurrenceID uuid.UUID) (int64, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	// DoSerializable выполняет fn в сериализуемой транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
