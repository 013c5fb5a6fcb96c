package update_time_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	timeblocksService "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
	timeblocksModels "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

const (
	msgMissingTenantID    = "не удалось определить тенанта"
	msgInvalidBlockID     = "некорректный ID блокировки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTimeBlockNotFound  = "блокировка времени не найдена"
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

// Handle PATCH /api/v1/availability/time-blocks/{blockId}
// editPattern=true в теле применяет изменения ко всей серии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /availability/time-blocks/{id} - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	blockID, err := uuid.Parse(mux.Vars(r)["blockId"])
	if err != nil {
		h.logger.Warn("PATCH /availability/time-blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	var req timeblocksModels.UpdateTimeBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /availability/time-blocks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), tenantID, blockID, &req)
	if err != nil {
		switch {
		case errors.Is(err, timeblocksService.ErrInvalidInput):
			h.logger.Warn("PATCH /availability/time-blocks/{id} - Invalid input: block_id=%s, error=%v", blockID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, timeblocksService.ErrTimeBlockNotFound):
			h.logger.Warn("PATCH /availability/time-blocks/{id} - Time block not found: block_id=%s, tenant_id=%s",
				blockID, tenantID)
			handlers.RespondNotFound(w, msgTimeBlockNotFound)

		default:
			h.logger.Error("PATCH /availability/time-blocks/{id} - Failed to update time block: block_id=%s, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /availability/time-blocks/{id} - Time block updated successfully: block_id=%s, tenant_id=%s, edit_pattern=%t",
		blockID, tenantID, req.EditPattern)
	handlers.RespondJSON(w, http.StatusOK, result)
}
