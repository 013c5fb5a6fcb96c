package get_working_hours

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
)

const msgMissingTenantID = "не удалось определить тенанта"

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability/working-hours - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	result, err := h.service.GetByTenant(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /availability/working-hours - Failed to get working hours: tenant_id=%s, error=%v",
			tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/working-hours - Working hours retrieved successfully: tenant_id=%s, count=%d",
		tenantID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
