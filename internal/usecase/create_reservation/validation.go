package create_reservation

import (
	"fmt"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resource ID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end times are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidTimeRange)
	}

	if !domain.ValidCategory(req.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidCategory, req.Category)
	}

	if req.Purpose != nil && len(*req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters",
			ErrInvalidInput, domain.MaxPurposeLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters",
			ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
