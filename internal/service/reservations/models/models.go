package models

import (
	"errors"
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled,
		domain.StatusCompleted, domain.StatusExpired:
		return status, nil
	}
	return "", ErrInvalidStatus
}

// Response модели

// ReservationResponse ответ с данными бронирования.
// Подпись и цвет статуса/категории денормализованы для отображения:
// клиент красит ячейки и бейджи без собственных таблиц соответствия.
type ReservationResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	ResourceID int64  `json:"resourceId"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Status        string `json:"status"`
	StatusLabel   string `json:"statusLabel"`
	StatusColor   string `json:"statusColor"`
	Category      string `json:"category"`
	CategoryLabel string `json:"categoryLabel"`
	CategoryColor string `json:"categoryColor"`

	Purpose              *string `json:"purpose,omitempty"`
	Notes                *string `json:"notes,omitempty"`
	EstimatedFlightHours float64 `json:"estimatedFlightHours"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	statusInfo := domain.StatusDisplay(r.Status)
	categoryInfo := domain.CategoryDisplay(r.Category)

	resp := &ReservationResponse{
		ID:                   r.ID,
		UserID:               r.UserID,
		ResourceID:           r.ResourceID,
		StartTime:            r.StartTime,
		EndTime:              r.EndTime,
		Status:               string(r.Status),
		StatusLabel:          statusInfo.Label,
		StatusColor:          statusInfo.Color,
		Category:             string(r.Category),
		CategoryLabel:        categoryInfo.Label,
		CategoryColor:        categoryInfo.Color,
		Purpose:              r.Purpose,
		Notes:                r.Notes,
		EstimatedFlightHours: r.EstimatedFlightHours,
		CancellationReason:   r.CancellationReason,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}
