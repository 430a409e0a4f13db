package create_reservation

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
)

// Request модель запроса на создание бронирования.
// Начало и конец - точные моменты: выравнивание по границам слотов
// не требуется, конфликт считается по пересечению со слотами сетки.
type Request struct {
	UserID     int64
	ResourceID int64     // ID воздушного судна
	StartTime  time.Time
	EndTime    time.Time
	Category   domain.ReservationCategory
	Purpose    *string
	Notes      *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                   int64
	UserID               int64
	ResourceID           int64
	RegistrationNumber   string // денормализованный бортовой номер
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

func newResponse(res *domain.Reservation, registration string) *Response {
	return &Response{
		ID:                   res.ID,
		UserID:               res.UserID,
		ResourceID:           res.ResourceID,
		RegistrationNumber:   registration,
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
