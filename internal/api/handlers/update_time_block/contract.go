package update_time_block

import (
	"context"

	"github.com/google/uuid"

	timeblocksModels "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

type TimeBlocksService interface {
	Update(ctx context.Context, tenantID, id uuid.UUID, req *timeblocksModels.UpdateTimeBlockRequest) (*timeblocksModels.TimeBlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
