package bulk_delete_time_blocks

import (
	"context"

	"github.com/google/uuid"

	timeblocksModels "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

type TimeBlocksService interface {
	BulkDeleteByRange(ctx context.Context, tenantID uuid.UUID, req *timeblocksModels.BulkDeleteRequest) (*timeblocksModels.BulkDeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
