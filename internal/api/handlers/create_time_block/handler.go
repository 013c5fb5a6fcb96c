package create_time_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	timeblocksService "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
	expandRecurrence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/expand_recurrence"
)

const (
	msgMissingTenantID    = "не удалось определить тенанта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты-времени, ожидается YYYY-MM-DDTHH:MM:SS"
)

type Handler struct {
	service TimeBlocksService
	useCase ExpandRecurrenceUseCase
	logger  Logger
}

func NewHandler(service TimeBlocksService, useCase ExpandRecurrenceUseCase, logger Logger) *Handler {
	return &Handler{
		service: service,
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/time-blocks
// Тело с recurrence разворачивается в серию блокировок
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability/time-blocks - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req CreateTimeBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/time-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.IsRecurring() {
		h.handleRecurring(w, r, tenantID, &req)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /availability/time-blocks - Invalid datetime format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Create(r.Context(), tenantID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, timeblocksService.ErrInvalidInput):
			h.logger.Warn("POST /availability/time-blocks - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /availability/time-blocks - Failed to create time block: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/time-blocks - Time block created successfully: block_id=%s, tenant_id=%s",
		result.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) handleRecurring(w http.ResponseWriter, r *http.Request, tenantID uuid.UUID, req *CreateTimeBlockRequest) {
	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /availability/time-blocks - Invalid recurrence request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, expandRecurrence.ErrInvalidInput):
			h.logger.Warn("POST /availability/time-blocks - Invalid recurrence pattern: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /availability/time-blocks - Failed to create series: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /availability/time-blocks - Series created successfully: recurrence_id=%s, tenant_id=%s, blocks_count=%d",
		result.RecurrenceID, tenantID, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
