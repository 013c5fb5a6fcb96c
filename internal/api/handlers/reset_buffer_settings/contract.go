package reset_buffer_settings

import (
	"context"

	"github.com/google/uuid"
)

type TenantSettingsService interface {
	ResetBufferSettings(ctx context.Context, tenantID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
