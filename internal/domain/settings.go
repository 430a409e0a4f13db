package domain

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

// BusinessSettings holds the aeroclub booking calendar: closure weekdays,
// the daily reservation window and the grid slot duration. Immutable per
// fetch; replaced wholesale when settings are updated.
type BusinessSettings struct {
	ID                      int64
	ClosureDays             []string // weekday names, locale spelling with accents allowed
	ReservationStartTime    types.TimeString
	ReservationEndTime      types.TimeString
	TimeSlotDurationMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsComplete reports whether the settings describe a renderable business day.
// Incomplete settings mean "still loading", not a zero-length day.
func (s *BusinessSettings) IsComplete() bool {
	if s == nil {
		return false
	}
	if s.ReservationStartTime.IsZero() || s.ReservationEndTime.IsZero() {
		return false
	}
	return s.ReservationStartTime.IsBefore(s.ReservationEndTime)
}

// SlotDuration returns the grid step, falling back to the default when unset
func (s *BusinessSettings) SlotDuration() int {
	if s == nil || s.TimeSlotDurationMinutes <= 0 {
		return DefaultSlotDurationMinutes
	}
	return s.TimeSlotDurationMinutes
}

// ValidSlotDuration reports whether d keeps the grid hour-aligned:
// within [30, 120] minutes and either dividing or being a multiple of 60.
func ValidSlotDuration(d int) bool {
	if d < MinSlotDurationMinutes || d > MaxSlotDurationMinutes {
		return false
	}
	return 60%d == 0 || d%60 == 0
}
