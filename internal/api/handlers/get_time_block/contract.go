package get_time_block

import (
	"context"

	"github.com/google/uuid"

	timeblocksModels "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

type TimeBlocksService interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*timeblocksModels.TimeBlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
