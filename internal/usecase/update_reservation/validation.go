package update_reservation

import (
	"fmt"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation ID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}

	// Перенос времени - только парой: одна граница без другой неоднозначна
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return fmt.Errorf("%w: start and end times must be provided together", ErrInvalidInput)
	}

	if req.StartTime != nil && !req.EndTime.After(*req.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidTimeRange)
	}

	if req.Category != nil && !domain.ValidCategory(*req.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidCategory, *req.Category)
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
