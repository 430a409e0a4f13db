package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 30
	MaxSlotDurationMinutes = 120
	MaxNotesLength         = 500
	MaxPurposeLength       = 200
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы бронирований, не занимающих слоты в сетке.
// Используются при фильтрации выборок для расчёта занятости.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusExpired,
}

// ActiveStatuses статусы бронирований, занимающих слоты в сетке
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// Categories все допустимые категории полётов
var Categories = []ReservationCategory{
	CategoryLocalFlight,
	CategoryCrossCountry,
	CategoryInstruction,
	CategoryMaintenance,
}

// ValidCategory проверяет, что категория известна
func ValidCategory(c ReservationCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
