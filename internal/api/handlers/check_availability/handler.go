package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	checkSlotAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_slot_availability"
)

const (
	msgMissingTenantID = "не удалось определить тенанта"
	msgMissingPeriod   = "параметры startDateTime и endDateTime обязательны"
	msgInvalidDateTime = "некорректный формат даты-времени, ожидается YYYY-MM-DDTHH:MM:SS"
)

type Handler struct {
	useCase CheckSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/check
// Query params: startDateTime (required), endDateTime (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability/check - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	startStr := r.URL.Query().Get("startDateTime")
	endStr := r.URL.Query().Get("endDateTime")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /availability/check - Missing period: tenant_id=%s", tenantID)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tenantID, startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid datetime format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlotAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/check - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability/check - Failed to check slot: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/check - Slot checked: tenant_id=%s, available=%t, conflicts_count=%d",
		tenantID, result.IsAvailable, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, response)
}
