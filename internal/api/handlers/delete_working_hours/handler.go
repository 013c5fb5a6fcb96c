package delete_working_hours

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	workinghoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
)

const (
	msgMissingTenantID      = "не удалось определить тенанта"
	msgInvalidHoursID       = "некорректный ID рабочих часов"
	msgWorkingHoursNotFound = "рабочие часы не найдены"
)

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

// Handle DELETE /api/v1/availability/working-hours/{hoursId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /availability/working-hours/{id} - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	hoursID, err := uuid.Parse(mux.Vars(r)["hoursId"])
	if err != nil {
		h.logger.Warn("DELETE /availability/working-hours/{id} - Invalid hours ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoursID)
		return
	}

	if err := h.service.Delete(r.Context(), tenantID, hoursID); err != nil {
		switch {
		case errors.Is(err, workinghoursService.ErrWorkingHoursNotFound):
			h.logger.Warn("DELETE /availability/working-hours/{id} - Working hours not found: id=%s, tenant_id=%s",
				hoursID, tenantID)
			handlers.RespondNotFound(w, msgWorkingHoursNotFound)

		default:
			h.logger.Error("DELETE /availability/working-hours/{id} - Failed to delete working hours: id=%s, error=%v",
				hoursID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/working-hours/{id} - Working hours deleted successfully: id=%s, tenant_id=%s",
		hoursID, tenantID)
	handlers.RespondNoContent(w)
}
