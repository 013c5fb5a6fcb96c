package get_working_hours

import (
	"context"

	"github.com/google/uuid"

	workinghoursModels "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	GetByTenant(ctx context.Context, tenantID uuid.UUID) (*workinghoursModels.WorkingHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
