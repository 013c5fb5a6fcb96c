package delete_time_block

import (
	"context"

	"github.com/google/uuid"
)

type TimeBlocksService interface {
	Delete(ctx context.Context, tenantID, id uuid.UUID, deletePattern bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
