package delete_time_block

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

// Handle DELETE /api/v1/availability/time-blocks/{blockId}
// Query params: deletePattern=true удаляет всю серию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /availability/time-blocks/{id} - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	blockID, err := uuid.Parse(mux.Vars(r)["blockId"])
	if err != nil {
		h.logger.Warn("DELETE /availability/time-blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	deletePattern := r.URL.Query().Get("deletePattern") == "true"

	if err := h.service.Delete(r.Context(), tenantID, blockID, deletePattern); err != nil {
		switch {
		case errors.Is(err, timeblocksService.ErrTimeBlockNotFound):
			h.logger.Warn("DELETE /availability/time-blocks/{id} - Time block not found: block_id=%s, tenant_id=%s",
				blockID, tenantID)
			handlers.RespondNotFound(w, msgTimeBlockNotFound)

		default:
			h.logger.Error("DELETE /availability/time-blocks/{id} - Failed to delete time block: block_id=%s, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/time-blocks/{id} - Time block deleted successfully: block_id=%s, tenant_id=%s, delete_pattern=%t",
		blockID, tenantID, deletePattern)
	handlers.RespondNoContent(w)
}
