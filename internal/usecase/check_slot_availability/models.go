package check_slot_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на проверку слота
type Request struct {
	TenantID      uuid.UUID // ID тенанта
	StartDateTime time.Time // Начало кандидата на бронирование
	EndDateTime   time.Time // Конец кандидата на бронирование
}

// Response модель ответа с результатом проверки
type Response struct {
	IsAvailable bool              // true, если конфликтов нет
	Conflicts   []domain.Conflict // Найденные конфликты
}
