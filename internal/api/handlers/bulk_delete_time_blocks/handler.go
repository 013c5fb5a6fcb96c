package bulk_delete_time_blocks

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	timeblocksService "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
	timeblocksModels "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

const (
	msgMissingTenantID = "не удалось определить тенанта"
	msgMissingDates    = "параметры startDate и endDate обязательны"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service TimeBlocksService
	logger  Logger
}

func NewHandler(service TimeBlocksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/availability/time-blocks
// Query params: startDate (required), endDate (required) - YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /availability/time-blocks - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("DELETE /availability/time-blocks - Missing dates: tenant_id=%s", tenantID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("DELETE /availability/time-blocks - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("DELETE /availability/time-blocks - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceReq := &timeblocksModels.BulkDeleteRequest{
		StartDate: startDate,
		EndDate:   endDate,
	}

	result, err := h.service.BulkDeleteByRange(r.Context(), tenantID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, timeblocksService.ErrInvalidInput):
			h.logger.Warn("DELETE /availability/time-blocks - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /availability/time-blocks - Failed to bulk delete: tenant_id=%s, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/time-blocks - Bulk delete completed: tenant_id=%s, deleted=%d",
		tenantID, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
