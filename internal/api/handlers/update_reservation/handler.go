package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SkyCrew-app/reservation-service/internal/api/handlers"
	"github.com/SkyCrew-app/reservation-service/internal/api/middleware"
	updateReservation "github.com/SkyCrew-app/reservation-service/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается RFC 3339"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgNotUpdatable         = "бронирование уже нельзя изменить"
	msgSlotConflict         = "новый интервал пересекается с занятым или нерабочим слотом"
	msgClubClosed           = "аэроклуб закрыт в выбранную дату"
	msgSettingsNotLoaded    = "настройки клуба ещё не настроены"
	msgInvalidDate          = "некорректная дата бронирования"
	msgInvalidTimeRange     = "некорректный временной интервал"
	msgInvalidCategory      = "некорректная категория полёта"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, userID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateReservation.ErrNotUpdatable):
			h.logger.Warn("PATCH /reservations/{id} - Not updatable: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgNotUpdatable)

		case errors.Is(err, updateReservation.ErrSlotConflict):
			h.logger.Warn("PATCH /reservations/{id} - Slot conflict: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, updateReservation.ErrClosedDay):
			h.logger.Warn("PATCH /reservations/{id} - Club closed: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgClubClosed)

		case errors.Is(err, updateReservation.ErrSettingsNotLoaded):
			h.logger.Warn("PATCH /reservations/{id} - Settings not configured: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgSettingsNotLoaded)

		case errors.Is(err, updateReservation.ErrInvalidDate):
			h.logger.Warn("PATCH /reservations/{id} - Invalid date: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, updateReservation.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /reservations/{id} - Invalid time range: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateReservation.ErrInvalidCategory):
			h.logger.Warn("PATCH /reservations/{id} - Invalid category: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
