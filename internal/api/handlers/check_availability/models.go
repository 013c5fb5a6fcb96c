package check_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	checkSlotAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_slot_availability"
)

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	IsAvailable bool       `json:"isAvailable"`
	Conflicts   []Conflict `json:"conflicts"`
}

// Conflict найденный конфликт слота
type Conflict struct {
	Type         string `json:"type"` // working_hours | time_block | buffer_time
	OverlapStart string `json:"overlapStart"`
	OverlapEnd   string `json:"overlapEnd"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlotAvailability.Response) *CheckAvailabilityResponse {
	conflicts := make([]Conflict, len(resp.Conflicts))
	for i, c := range resp.Conflicts {
		conflicts[i] = Conflict{
			Type:         string(c.Type),
			OverlapStart: c.OverlapStart.Format(domain.DateTimeFormat),
			OverlapEnd:   c.OverlapEnd.Format(domain.DateTimeFormat),
		}
	}

	return &CheckAvailabilityResponse{
		IsAvailable: resp.IsAvailable,
		Conflicts:   conflicts,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(tenantID uuid.UUID, startStr, endStr string) (*checkSlotAvailability.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, startStr)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, endStr)
	if err != nil {
		return nil, err
	}

	return &checkSlotAvailability.Request{
		TenantID:      tenantID,
		StartDateTime: start,
		EndDateTime:   end,
	}, nil
}
