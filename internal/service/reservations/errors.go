package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("service.reservations: reservation not found")

	// ErrAccessDenied возвращается при обращении к чужому бронированию
	ErrAccessDenied = errors.New("service.reservations: access denied")

	// ErrCannotCancel возвращается, когда статус бронирования
	// не допускает отмены
	ErrCannotCancel = errors.New("service.reservations: reservation cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.reservations: internal error")
)
