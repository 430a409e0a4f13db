package create_reservation

import "errors"

var (
	// ErrAircraftNotFound возвращается, когда воздушное судно не найдено во флоте
	ErrAircraftNotFound = errors.New("create_reservation: aircraft not found")

	// ErrSettingsNotLoaded возвращается, когда настройки клуба не созданы -
	// без рабочего окна бронирования не принимаются
	ErrSettingsNotLoaded = errors.New("create_reservation: business settings are not configured")

	// ErrClosedDay возвращается, когда дата приходится на закрытый день клуба
	ErrClosedDay = errors.New("create_reservation: club is closed on this date")

	// ErrInvalidDate возвращается при попытке бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrInvalidTimeRange возвращается при нулевой или отрицательной длительности
	ErrInvalidTimeRange = errors.New("create_reservation: invalid time range")

	// ErrSlotConflict возвращается, когда интервал задевает занятый или
	// нерабочий слот
	ErrSlotConflict = errors.New("create_reservation: time slot conflict")

	// ErrInvalidCategory возвращается при неизвестной категории полёта
	ErrInvalidCategory = errors.New("create_reservation: invalid flight category")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
