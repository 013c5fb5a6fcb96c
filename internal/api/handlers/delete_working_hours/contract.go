package delete_working_hours

import (
	"context"

	"github.com/google/uuid"
)

type WorkingHoursService interface {
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
