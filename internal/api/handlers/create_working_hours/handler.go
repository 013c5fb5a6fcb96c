package create_working_hours

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
	msgDuplicateDay       = "рабочие часы на этот день уже заданы"
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

// Handle POST /api/v1/availability/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability/working-hours - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req workinghoursModels.CreateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, workinghoursService.ErrInvalidInput):
			h.logger.Warn("POST /availability/working-hours - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, workinghoursService.ErrDuplicateDay):
			h.logger.Warn("POST /availability/working-hours - Duplicate day: tenant_id=%s, day=%d", tenantID, req.Day)
			handlers.RespondConflict(w, msgDuplicateDay)

		default:
			h.logger.Error("POST /availability/working-hours - Failed to create working hours: tenant_id=%s, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/working-hours - Working hours created successfully: id=%s, tenant_id=%s, day=%d",
		result.ID, tenantID, req.Day)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
