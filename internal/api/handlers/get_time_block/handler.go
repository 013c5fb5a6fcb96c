package get_time_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	timeblocksService "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
)

const (
	msgMissingTenantID   = "не удалось определить тенанта"
	msgInvalidBlockID    = "некорректный ID блокировки"
	msgTimeBlockNotFound = "блокировка времени не найдена"
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

// Handle GET /api/v1/availability/time-blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability/time-blocks/{id} - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	blockID, err := uuid.Parse(mux.Vars(r)["blockId"])
	if err != nil {
		h.logger.Warn("GET /availability/time-blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	result, err := h.service.GetByID(r.Context(), tenantID, blockID)
	if err != nil {
		switch {
		case errors.Is(err, timeblocksService.ErrTimeBlockNotFound):
			h.logger.Warn("GET /availability/time-blocks/{id} - Time block not found: block_id=%s, tenant_id=%s",
				blockID, tenantID)
			handlers.RespondNotFound(w, msgTimeBlockNotFound)

		default:
			h.logger.Error("GET /availability/time-blocks/{id} - Failed to get time block: block_id=%s, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/time-blocks/{id} - Time block retrieved successfully: block_id=%s, tenant_id=%s",
		blockID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
