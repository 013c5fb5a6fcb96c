package update_buffer_settings

import (
	"context"

	"github.com/google/uuid"

	tenantsettingsModels "github.com/m04kA/SMC-AvailabilityService/internal/service/tenantsettings/models"
)

type TenantSettingsService interface {
	UpdateBufferSettings(ctx context.Context, tenantID uuid.UUID, req *tenantsettingsModels.UpdateBufferSettingsRequest) (*tenantsettingsModels.BufferSettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
