package update_reservation

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	updateReservation "github.com/SkyCrew-app/reservation-service/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model. Все поля опциональны,
// перенос времени задаётся обеими границами сразу.
type UpdateReservationRequest struct {
	StartTime *string `json:"startTime,omitempty"` // RFC 3339
	EndTime   *string `json:"endTime,omitempty"`   // RFC 3339
	Category  *string `json:"category,omitempty"`
	Purpose   *string `json:"purpose,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                   int64   `json:"id"`
	UserID               int64   `json:"userId"`
	ResourceID           int64   `json:"resourceId"`
	StartTime            string  `json:"startTime"`
	EndTime              string  `json:"endTime"`
	Status               string  `json:"status"`
	Category             string  `json:"category"`
	Purpose              *string `json:"purpose,omitempty"`
	Notes                *string `json:"notes,omitempty"`
	EstimatedFlightHours float64 `json:"estimatedFlightHours"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID, userID int64) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
		Purpose:       r.Purpose,
		Notes:         r.Notes,
	}

	if r.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}
	if r.EndTime != nil {
		endTime, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}
	if r.Category != nil {
		category := domain.ReservationCategory(*r.Category)
		req.Category = &category
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                   resp.ID,
		UserID:               resp.UserID,
		ResourceID:           resp.ResourceID,
		StartTime:            resp.StartTime.Format(time.RFC3339),
		EndTime:              resp.EndTime.Format(time.RFC3339),
		Status:               resp.Status,
		Category:             resp.Category,
		Purpose:              resp.Purpose,
		Notes:                resp.Notes,
		EstimatedFlightHours: resp.EstimatedFlightHours,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
