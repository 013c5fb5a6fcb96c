package create_time_block

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	timeblocksModels "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
	expandRecurrence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/expand_recurrence"
)

// CreateTimeBlockRequest HTTP request model
// При наличии recurrence создается вся серия блокировок
type CreateTimeBlockRequest struct {
	StartDateTime string             `json:"startDateTime"` // "2025-06-11T12:00:00"
	EndDateTime   string             `json:"endDateTime"`
	Type          string             `json:"type"` // vacation | break | custom
	Reason        *string            `json:"reason,omitempty"`
	Recurrence    *RecurrenceRequest `json:"recurrence,omitempty"`
}

// RecurrenceRequest паттерн повторения блокировки
type RecurrenceRequest struct {
	Frequency      string  `json:"frequency"` // daily | weekly | monthly
	Interval       int     `json:"interval"`
	DaysOfWeek     []int   `json:"daysOfWeek,omitempty"`
	DaysOfMonth    []int   `json:"daysOfMonth,omitempty"`
	EndDate        *string `json:"endDate,omitempty"` // "YYYY-MM-DD"
	MaxOccurrences *int    `json:"maxOccurrences,omitempty"`
}

// RecurringBlockResponse ответ с созданной серией блокировок
type RecurringBlockResponse struct {
	RecurrenceID uuid.UUID                          `json:"recurrenceId"`
	CreatedCount int                                `json:"createdCount"`
	Blocks       []timeblocksModels.TimeBlockResponse `json:"blocks"`
}

// IsRecurring возвращает true, если запрошено создание серии
func (r *CreateTimeBlockRequest) IsRecurring() bool {
	return r.Recurrence != nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (одиночная блокировка)
func (r *CreateTimeBlockRequest) ToServiceRequest() (*timeblocksModels.CreateTimeBlockRequest, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.StartDateTime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, r.EndDateTime)
	if err != nil {
		return nil, err
	}

	return &timeblocksModels.CreateTimeBlockRequest{
		StartDateTime: start,
		EndDateTime:   end,
		Type:          r.Type,
		Reason:        r.Reason,
	}, nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (серия)
func (r *CreateTimeBlockRequest) ToUseCaseRequest(tenantID uuid.UUID) (*expandRecurrence.Request, error) {
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

	return &expandRecurrence.Request{
		TenantID:      tenantID,
		StartDateTime: start,
		EndDateTime:   end,
		Type:          domain.TimeBlockType(r.Type),
		Reason:        r.Reason,
		Pattern:       pattern,
	}, nil
}

// ToDomainPattern конвертирует HTTP паттерн в domain модель
// Содержательная валидация выполняется в use case
func (r *RecurrenceRequest) ToDomainPattern() (domain.RecurrencePattern, error) {
	pattern := domain.RecurrencePattern{
		Frequency:      domain.RecurrenceFrequency(r.Frequency),
		Interval:       r.Interval,
		DaysOfMonth:    r.DaysOfMonth,
		MaxOccurrences: r.MaxOccurrences,
	}

	for _, day := range r.DaysOfWeek {
		pattern.DaysOfWeek = append(pattern.DaysOfWeek, time.Weekday(day))
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return domain.RecurrencePattern{}, err
		}
		pattern.EndDate = &endDate
	}

	return pattern, nil
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
