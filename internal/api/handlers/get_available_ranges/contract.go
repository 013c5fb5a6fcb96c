package get_available_ranges

import (
	"context"

	getAvailableRanges "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_ranges"
)

type GetAvailableRangesUseCase interface {
	Execute(ctx context.Context, req *getAvailableRanges.Request) (*getAvailableRanges.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
