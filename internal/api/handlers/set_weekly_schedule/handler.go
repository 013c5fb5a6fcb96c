package set_weekly_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	workinghoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
	workinghoursModels "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours/models"
)

const (
	msgMissingTenantID    = "не удалось определить тенанта"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle PUT /api/v1/availability/working-hours
// Заменяет все недельное расписание тенанта целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /availability/working-hours - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req workinghoursModels.SetWeeklyScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetWeeklySchedule(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, workinghoursService.ErrInvalidInput):
			h.logger.Warn("PUT /availability/working-hours - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /availability/working-hours - Failed to set weekly schedule: tenant_id=%s, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/working-hours - Weekly schedule replaced successfully: tenant_id=%s, created=%d",
		tenantID, result.CreatedCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
