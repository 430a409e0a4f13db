package create_reservation

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	createReservation "github.com/SkyCrew-app/reservation-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model.
// Моменты времени передаются в RFC 3339 - выделение в сетке может
// начинаться не с границы слота.
type CreateReservationRequest struct {
	ResourceID int64   `json:"resourceId"`
	StartTime  string  `json:"startTime"` // RFC 3339
	EndTime    string  `json:"endTime"`   // RFC 3339
	Category   string  `json:"category"`
	Purpose    *string `json:"purpose,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                   int64   `json:"id"`
	UserID               int64   `json:"userId"`
	ResourceID           int64   `json:"resourceId"`
	RegistrationNumber   string  `json:"registrationNumber"`
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
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:     userID,
		ResourceID: r.ResourceID,
		StartTime:  startTime,
		EndTime:    endTime,
		Category:   domain.ReservationCategory(r.Category),
		Purpose:    r.Purpose,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                   resp.ID,
		UserID:               resp.UserID,
		ResourceID:           resp.ResourceID,
		RegistrationNumber:   resp.RegistrationNumber,
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
