package get_available_ranges

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	getAvailableRanges "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_ranges"
)

const (
	msgMissingTenantID = "не удалось определить тенанта"
	msgMissingDates    = "параметры startDate и endDate обязательны"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTenantNotFound  = "тенант не найден"
)

type Handler struct {
	useCase GetAvailableRangesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRangesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/available-ranges
// Query params: startDate (required, YYYY-MM-DD), endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability/available-ranges - Missing tenant ID in context")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /availability/available-ranges - Missing dates: tenant_id=%s", tenantID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tenantID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /availability/available-ranges - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRanges.ErrInvalidInput):
			h.logger.Warn("GET /availability/available-ranges - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableRanges.ErrTenantNotFound):
			h.logger.Warn("GET /availability/available-ranges - Tenant not found: tenant_id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /availability/available-ranges - Failed to get ranges: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/available-ranges - Ranges retrieved successfully: tenant_id=%s, ranges_count=%d",
		tenantID, len(result.Ranges))
	handlers.RespondJSON(w, http.StatusOK, response)
}
