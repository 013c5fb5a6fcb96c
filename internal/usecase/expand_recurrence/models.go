package expand_recurrence

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на создание повторяющейся серии блокировок
type Request struct {
	TenantID      uuid.UUID                // ID тенанта
	StartDateTime time.Time                // Начало базовой блокировки
	EndDateTime   time.Time                // Конец базовой блокировки
	Type          domain.TimeBlockType     // Тип блокировки
	Reason        *string                  // Причина (опционально)
	Pattern       domain.RecurrencePattern // Паттерн повторения
}

// RegenerateRequest модель запроса на перегенерацию существующей серии
// Старые вхождения удаляются, серия строится заново от новой базовой блокировки
type RegenerateRequest struct {
	TenantID      uuid.UUID
	RecurrenceID  uuid.UUID
	StartDateTime time.Time
	EndDateTime   time.Time
	Type          domain.TimeBlockType
	Reason        *string
	Pattern       domain.RecurrencePattern
}

// Response модель ответа с материализованной серией
type Response struct {
	RecurrenceID uuid.UUID           // Общий ID серии
	Blocks       []*domain.TimeBlock // Все блокировки серии (включая базовую), по возрастанию начала
}
