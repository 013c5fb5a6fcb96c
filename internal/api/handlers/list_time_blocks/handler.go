package list_time_blocks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	timeblocksService "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
)

const (
	msgMissingTenantID = "не удалось определить тенанта"
	msgInvalidQuery    = "некорректные параметры запроса"
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

// Handle GET /api/v1/availability/time-blocks
// Query params: startDate, endDate (YYYY-MM-DD, вместе), limit, offset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability/time-blocks - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("limit"),
		query.Get("offset"),
	)
	if err != nil {
		h.logger.Warn("GET /availability/time-blocks - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), tenantID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, timeblocksService.ErrInvalidInput):
			h.logger.Warn("GET /availability/time-blocks - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability/time-blocks - Failed to list time blocks: tenant_id=%s, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/time-blocks - Time blocks listed successfully: tenant_id=%s, count=%d, total=%d",
		tenantID, len(result.Items), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
