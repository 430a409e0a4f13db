package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки ещё не созданы
	ErrSettingsNotFound = errors.New("service.settings: business settings not found")

	// ErrInvalidSlotDuration возвращается, когда шаг сетки ломает
	// выравнивание по часам
	ErrInvalidSlotDuration = errors.New("service.settings: invalid slot duration")

	// ErrInvalidTimeWindow возвращается, когда рабочее окно пустое
	// или вывернуто
	ErrInvalidTimeWindow = errors.New("service.settings: invalid reservation time window")

	// ErrUnknownClosureDay возвращается для нераспознанного названия дня
	ErrUnknownClosureDay = errors.New("service.settings: unknown closure day name")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.settings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.settings: internal error")
)
