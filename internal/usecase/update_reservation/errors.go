package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrAccessDenied возвращается при попытке изменить чужое бронирование
	ErrAccessDenied = errors.New("update_reservation: access denied")

	// ErrNotUpdatable возвращается, когда статус бронирования
	// не допускает изменений (отменено, завершено, истекло)
	ErrNotUpdatable = errors.New("update_reservation: reservation can no longer be updated")

	// ErrSettingsNotLoaded возвращается, когда настройки клуба не созданы
	ErrSettingsNotLoaded = errors.New("update_reservation: business settings are not configured")

	// ErrClosedDay возвращается, когда новая дата приходится на закрытый день
	ErrClosedDay = errors.New("update_reservation: club is closed on this date")

	// ErrInvalidDate возвращается при переносе бронирования в прошлое
	ErrInvalidDate = errors.New("update_reservation: invalid reservation date")

	// ErrInvalidTimeRange возвращается при нулевой или отрицательной длительности
	ErrInvalidTimeRange = errors.New("update_reservation: invalid time range")

	// ErrSlotConflict возвращается, когда новый интервал задевает занятый
	// или нерабочий слот
	ErrSlotConflict = errors.New("update_reservation: time slot conflict")

	// ErrInvalidCategory возвращается при неизвестной категории полёта
	ErrInvalidCategory = errors.New("update_reservation: invalid flight category")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
