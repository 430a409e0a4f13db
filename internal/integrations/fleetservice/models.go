package fleetservice

// Aircraft модель воздушного судна из сервиса флота
type Aircraft struct {
	ID                 int64  `json:"id"`
	RegistrationNumber string `json:"registration_number"`
	Model              string `json:"model"`
	Available          bool   `json:"available"`
}

// ErrorResponse модель ошибки от сервиса флота
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
