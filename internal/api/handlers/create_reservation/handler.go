package create_reservation

import (
	"errors"
	"net/http"

	"github.com/SkyCrew-app/reservation-service/internal/api/handlers"
	"github.com/SkyCrew-app/reservation-service/internal/api/middleware"
	createReservation "github.com/SkyCrew-app/reservation-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotConflict       = "выбранный интервал пересекается с занятым или нерабочим слотом"
	msgAircraftNotFound   = "воздушное судно не найдено"
	msgClubClosed         = "аэроклуб закрыт в выбранную дату"
	msgSettingsNotLoaded  = "настройки клуба ещё не настроены"
	msgInvalidDate        = "некорректная дата бронирования"
	msgInvalidTimeRange   = "некорректный временной интервал"
	msgInvalidCategory    = "некорректная категория полёта"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createReservation.ErrAircraftNotFound):
			h.logger.Warn("POST /reservations - Aircraft not found: resource_id=%d", req.ResourceID)
			handlers.RespondNotFound(w, msgAircraftNotFound)

		case errors.Is(err, createReservation.ErrClosedDay):
			h.logger.Warn("POST /reservations - Club closed: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondBadRequest(w, msgClubClosed)

		case errors.Is(err, createReservation.ErrSettingsNotLoaded):
			h.logger.Warn("POST /reservations - Settings not configured: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgSettingsNotLoaded)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservations - Invalid time range: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createReservation.ErrInvalidCategory):
			h.logger.Warn("POST /reservations - Invalid category: user_id=%d, category=%s", userID, req.Category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, resource_id=%d, error=%v",
				userID, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, resource_id=%d",
		result.ID, userID, req.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
