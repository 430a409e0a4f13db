package update_reservation

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
)

// Request модель запроса на изменение бронирования. Поля-указатели
// опциональны: nil означает "оставить как есть". Перенос времени задаётся
// обоими моментами сразу.
type Request struct {
	ReservationID int64
	UserID        int64 // инициатор, должен совпадать с владельцем

	StartTime *time.Time
	EndTime   *time.Time
	Category  *domain.ReservationCategory
	Purpose   *string
	Notes     *string
}

// Response модель ответа с изменённым бронированием
type Response struct {
	ID                   int64
	UserID               int64
	ResourceID           int64
	StartTime            time.Time
	EndTime              time.Time
	Status               string
	Category             string
	Purpose              *string
	Notes                *string
	EstimatedFlightHours float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func newResponse(res *domain.Reservation) *Response {
	return &Response{
		ID:                   res.ID,
		UserID:               res.UserID,
		ResourceID:           res.ResourceID,
		StartTime:            res.StartTime,
		EndTime:              res.EndTime,
		Status:               string(res.Status),
		Category:             string(res.Category),
		Purpose:              res.Purpose,
		Notes:                res.Notes,
		EstimatedFlightHours: res.EstimatedFlightHours,
		CreatedAt:            res.CreatedAt,
		UpdatedAt:            res.UpdatedAt,
	}
}
