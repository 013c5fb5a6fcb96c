package get_available_ranges

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на расчет свободных интервалов
type Request struct {
	TenantID  uuid.UUID // ID тенанта
	StartDate time.Time // Первый день периода (время игнорируется)
	EndDate   time.Time // Последний день периода включительно (время игнорируется)
}

// Response модель ответа со свободными интервалами за период
type Response struct {
	TenantID uuid.UUID          // ID тенанта
	Ranges   []domain.TimeRange // Свободные интервалы по возрастанию начала
}
