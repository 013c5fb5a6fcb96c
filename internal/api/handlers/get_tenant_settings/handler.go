package get_tenant_settings

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

// Handle GET /api/v1/availability/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability/settings - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	result, err := h.service.GetSettings(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, tenantsettingsService.ErrTenantNotFound):
			h.logger.Warn("GET /availability/settings - Tenant not found: tenant_id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /availability/settings - Failed to get settings: tenant_id=%s, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/settings - Settings retrieved successfully: tenant_id=%s", tenantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
