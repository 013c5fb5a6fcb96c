package set_weekly_schedule

import (
	"context"

	"github.com/google/uuid"

	workinghoursModels "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	SetWeeklySchedule(ctx context.Context, tenantID uuid.UUID, req *workinghoursModels.SetWeeklyScheduleRequest) (*workinghoursModels.WeeklyScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
