package update_recurring_block

import (
	"time"

	"github.com/google/uuid"

	createTimeBlock "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_time_block"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	timeblocksModels "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
	expandRecurrence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/expand_recurrence"
)

// UpdateRecurringBlockRequest HTTP request model
// Серия перестраивается целиком: старые вхождения удаляются
type UpdateRecurringBlockRequest struct {
	StartDateTime string                            `json:"startDateTime"`
	EndDateTime   string                            `json:"endDateTime"`
	Type          string                            `json:"type"`
	Reason        *string                           `json:"reason,omitempty"`
	Recurrence    createTimeBlock.RecurrenceRequest `json:"recurrence"`
}

// RecurringBlockResponse ответ с перестроенной серией
type RecurringBlockResponse struct {
	RecurrenceID uuid.UUID                            `json:"recurrenceId"`
	CreatedCount int                                  `json:"createdCount"`
	Blocks       []timeblocksModels.TimeBlockResponse `json:"blocks"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateRecurringBlockRequest) ToUseCaseRequest(tenantID, recurrenceID uuid.UUID) (*expandRecurrence.RegenerateRequest, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.StartDateTime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, r.EndDateTime)
	if err != nil {
		return nil, err
	}

	pattern, err := r.Recurrence.ToDomainPattern()
	if err != nil {
		return nil, err
	}

	return &expandRecurrence.RegenerateRequest{
		TenantID:      tenantID,
		RecurrenceID:  recurrenceID,
		StartDateTime: start,
		EndDateTime:   end,
		Type:          domain.TimeBlockType(r.Type),
		Reason:        r.Reason,
		Pattern:       pattern,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *expandRecurrence.Response) *RecurringBlockResponse {
	blocks := make([]timeblocksModels.TimeBlockResponse, 0, len(resp.Blocks))
	for _, block := range resp.Blocks {
		blocks = append(blocks, *timeblocksModels.FromDomainTimeBlock(block))
	}

	return &RecurringBlockResponse{
		RecurrenceID: resp.RecurrenceID,
		CreatedCount: len(blocks),
		Blocks:       blocks,
	}
}
