package fleetservice

import "errors"

var (
	// ErrAircraftNotFound возвращается, когда воздушное судно не найдено во флоте
	ErrAircraftNotFound = errors.New("aircraft not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("fleetservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("fleetservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что сервис флота недоступен и сетку следует отдать без
	// строк ресурсов (состояние загрузки), а не падать.
	ErrServiceDegraded = errors.New("fleetservice unavailable: graceful degradation applied")
)
