package update_buffer_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	tenantsettingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/tenantsettings"
	tenantsettingsModels "github.com/m04kA/SMC-AvailabilityService/internal/service/tenantsettings/models"
)

const (
	msgMissingTenantID    = "не удалось определить тенанта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTenantNotFound     = "тенант не найден"
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

// Handle PATCH /api/v1/availability/settings/buffers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /availability/settings/buffers - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req tenantsettingsModels.UpdateBufferSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /availability/settings/buffers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBufferSettings(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tenantsettingsService.ErrInvalidInput):
			h.logger.Warn("PATCH /availability/settings/buffers - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, tenantsettingsService.ErrTenantNotFound):
			h.logger.Warn("PATCH /availability/settings/buffers - Tenant not found: tenant_id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("PATCH /availability/settings/buffers - Failed to update buffers: tenant_id=%s, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /availability/settings/buffers - Buffers updated successfully: tenant_id=%s, before=%d, after=%d",
		tenantID, result.BufferBeforeMinutes, result.BufferAfterMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
