package create_working_hours

import (
	"context"

	"github.com/google/uuid"

	workinghoursModels "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req *workinghoursModels.CreateWorkingHoursRequest) (*workinghoursModels.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
