package list_time_blocks

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	timeblocksModels "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
func ToServiceRequest(startDateStr, endDateStr, limitStr, offsetStr string) (*timeblocksModels.ListTimeBlocksRequest, error) {
	req := &timeblocksModels.ListTimeBlocksRequest{}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}
