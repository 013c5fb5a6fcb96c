package check_slot_availability

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == uuid.Nil {
		return fmt.Errorf("%w: tenantId is required", ErrInvalidInput)
	}

	if req.StartDateTime.IsZero() || req.EndDateTime.IsZero() {
		return fmt.Errorf("%w: startDateTime and endDateTime are required", ErrInvalidInput)
	}

	if !req.StartDateTime.Before(req.EndDateTime) {
		return fmt.Errorf("%w: startDateTime must be before endDateTime", ErrInvalidInput)
	}

	return nil
}
