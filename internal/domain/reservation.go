package domain

import "time"

// ReservationStatus represents the status of an aircraft reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusExpired   ReservationStatus = "EXPIRED"
)

// ReservationCategory represents the purpose category of a flight
type ReservationCategory string

const (
	CategoryLocalFlight  ReservationCategory = "LOCAL_FLIGHT"
	CategoryCrossCountry ReservationCategory = "CROSS_COUNTRY"
	CategoryInstruction  ReservationCategory = "INSTRUCTION"
	CategoryMaintenance  ReservationCategory = "MAINTENANCE"
)

// Reservation represents one aircraft reservation with exact instants.
// StartTime < EndTime is an invariant enforced at creation; the grid
// tolerates sub-slot instants by truncating display to enclosing slots
// while keeping the exact instants for conflict math.
type Reservation struct {
	ID         int64
	ResourceID int64 // aircraft ID
	UserID     int64
	StartTime  time.Time
	EndTime    time.Time
	Status     ReservationStatus
	Category   ReservationCategory

	Purpose              *string
	Notes                *string
	EstimatedFlightHours float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the exact reservation duration
func (r *Reservation) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// IsActive returns true if the reservation still occupies grid slots
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusExpired
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeUpdated returns true if the reservation span can still change
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// Overlaps reports whether the reservation interval intersects [start, end).
// Strict inequalities: intervals that merely touch do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// ClaimsSlot reports whether the slot starting at slotStart belongs to this
// reservation: the reservation starts at or before the slot and ends strictly
// after it (half-open interval test).
func (r *Reservation) ClaimsSlot(slotStart time.Time) bool {
	return !r.StartTime.After(slotStart) && r.EndTime.After(slotStart)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	ResourceID      *int64             // Фильтр по воздушному судну (опционально)
	UserID          *int64             // Фильтр по члену клуба (опционально)
	StartDate       *time.Time         // Начало окна [StartDate, EndDate) (опционально)
	EndDate         *time.Time         // Конец окна, не включается (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и истёкшие
}

// IsSingleDayWindow возвращает true для окна ровно в одни сутки -
// такие выборки блокируются FOR UPDATE внутри транзакции создания
func (f *ReservationsFilter) IsSingleDayWindow() bool {
	if f.StartDate == nil || f.EndDate == nil {
		return false
	}
	return f.EndDate.Sub(*f.StartDate) == 24*time.Hour
}
