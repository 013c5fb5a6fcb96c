package reset_buffer_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	tenantsettingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/tenantsettings"
)

const (
	msgMissingTenantID = "не удалось определить тенанта"
	msgTenantNotFound  = "тенант не найден"
)

type Handler struct {
	service TenantSettingsService
	logger  Logger
}

func NewHandler(service TenantSettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/availability/settings/buffers
// Сбрасывает оба буфера в ноль
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /availability/settings/buffers - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	if err := h.service.ResetBufferSettings(r.Context(), tenantID); err != nil {
		switch {
		case errors.Is(err, tenantsettingsService.ErrTenantNotFound):
			h.logger.Warn("DELETE /availability/settings/buffers - Tenant not found: tenant_id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("DELETE /availability/settings/buffers - Failed to reset buffers: tenant_id=%s, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/settings/buffers - Buffers reset successfully: tenant_id=%s", tenantID)
	handlers.RespondNoContent(w)
}
