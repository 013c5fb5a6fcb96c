package update_recurring_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	expandRecurrence "github.com/m04kA/SMC-AvailabilityService/internal/usecase/expand_recurrence"
)

const (
	msgMissingTenantID     = "не удалось определить тенанта"
	msgInvalidRecurrenceID = "некорректный ID серии"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректный формат даты-времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgSeriesNotFound      = "серия повторений не найдена"
)

type Handler struct {
	useCase ExpandRecurrenceUseCase
	logger  Logger
}

func NewHandler(useCase ExpandRecurrenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/availability/time-blocks/recurring/{recurrenceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /availability/time-blocks/recurring/{id} - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	recurrenceID, err := uuid.Parse(mux.Vars(r)["recurrenceId"])
	if err != nil {
		h.logger.Warn("PUT /availability/time-blocks/recurring/{id} - Invalid recurrence ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecurrenceID)
		return
	}

	var req UpdateRecurringBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/time-blocks/recurring/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, recurrenceID)
	if err != nil {
		h.logger.Warn("PUT /availability/time-blocks/recurring/{id} - Invalid datetime format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Regenerate(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, expandRecurrence.ErrInvalidInput):
			h.logger.Warn("PUT /availability/time-blocks/recurring/{id} - Invalid input: recurrence_id=%s, error=%v",
				recurrenceID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, expandRecurrence.ErrSeriesNotFound):
			h.logger.Warn("PUT /availability/time-blocks/recurring/{id} - Series not found: recurrence_id=%s, tenant_id=%s",
				recurrenceID, tenantID)
			handlers.RespondNotFound(w, msgSeriesNotFound)

		default:
			h.logger.Error("PUT /availability/time-blocks/recurring/{id} - Failed to regenerate series: recurrence_id=%s, error=%v",
				recurrenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /availability/time-blocks/recurring/{id} - Series regenerated successfully: recurrence_id=%s, tenant_id=%s, blocks_count=%d",
		result.RecurrenceID, tenantID, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, response)
}
