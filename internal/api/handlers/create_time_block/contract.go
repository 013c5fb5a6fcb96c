package create_time_block

import (
	"context"

	"github.com/google/uuid"

	timeblocksModels "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
	expandRecurrence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/expand_recurrence"
)

type TimeBlocksService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req *timeblocksModels.CreateTimeBlockRequest) (*timeblocksModels.TimeBlockResponse, error)
}

type ExpandRecurrenceUseCase interface {
	Execute(ctx context.Context, req *expandRecurrence.Request) (*expandRecurrence.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
