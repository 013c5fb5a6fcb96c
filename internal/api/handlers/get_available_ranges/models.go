package get_available_ranges

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableRanges "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_ranges"
)

// AvailableRangesResponse HTTP response model
type AvailableRangesResponse struct {
	TenantID uuid.UUID        `json:"tenantId"`
	Ranges   []AvailableRange `json:"ranges"`
}

// AvailableRange свободный интервал
type AvailableRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRanges.Response) *AvailableRangesResponse {
	ranges := make([]AvailableRange, len(resp.Ranges))
	for i, r := range resp.Ranges {
		ranges[i] = AvailableRange{
			Start: r.Start.Format(domain.DateTimeFormat),
			End:   r.End.Format(domain.DateTimeFormat),
		}
	}

	return &AvailableRangesResponse{
		TenantID: resp.TenantID,
		Ranges:   ranges,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(tenantID uuid.UUID, startDateStr, endDateStr string) (*getAvailableRanges.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableRanges.Request{
		TenantID:  tenantID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
