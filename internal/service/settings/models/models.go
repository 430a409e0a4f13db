package models

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

// Request модели

// UpdateSettingsRequest запрос на замену настроек клуба.
// Настройки заменяются целиком: частичное обновление календаря
// оставляло бы сетку в неопределённом состоянии.
type UpdateSettingsRequest struct {
	ClosureDays             []string `json:"closureDays"`
	ReservationStartTime    string   `json:"reservationStartTime"` // "HH:MM"
	ReservationEndTime      string   `json:"reservationEndTime"`   // "HH:MM"
	TimeSlotDurationMinutes int      `json:"timeSlotDurationMinutes"`
}

// ToDomainSettings конвертирует request в domain модель
func (r *UpdateSettingsRequest) ToDomainSettings() (*domain.BusinessSettings, error) {
	start, err := types.NewTimeStringFromString(r.ReservationStartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.ReservationEndTime)
	if err != nil {
		return nil, err
	}

	return &domain.BusinessSettings{
		ClosureDays:             r.ClosureDays,
		ReservationStartTime:    start,
		ReservationEndTime:      end,
		TimeSlotDurationMinutes: r.TimeSlotDurationMinutes,
	}, nil
}

// Response модели

// SettingsResponse ответ с настройками клуба
type SettingsResponse struct {
	ID                      int64    `json:"id"`
	ClosureDays             []string `json:"closureDays"`
	ReservationStartTime    string   `json:"reservationStartTime"`
	ReservationEndTime      string   `json:"reservationEndTime"`
	TimeSlotDurationMinutes int      `json:"timeSlotDurationMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.BusinessSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	closureDays := s.ClosureDays
	if closureDays == nil {
		closureDays = []string{}
	}

	return &SettingsResponse{
		ID:                      s.ID,
		ClosureDays:             closureDays,
		ReservationStartTime:    s.ReservationStartTime.String(),
		ReservationEndTime:      s.ReservationEndTime.String(),
		TimeSlotDurationMinutes: s.SlotDuration(),
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}
