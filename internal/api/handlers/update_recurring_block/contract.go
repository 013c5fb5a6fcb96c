package update_recurring_block

import (
	"context"

	expandRecurrence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/expand_recurrence"
)

type ExpandRecurrenceUseCase interface {
	Regenerate(ctx context.Context, req *expandRecurrence.RegenerateRequest) (*expandRecurrence.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
