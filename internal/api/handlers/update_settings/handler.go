package update_settings

import (
	"errors"
	"net/http"

	"github.com/SkyCrew-app/reservation-service/internal/api/handlers"
	"github.com/SkyCrew-app/reservation-service/internal/service/settings"
	"github.com/SkyCrew-app/reservation-service/internal/service/settings/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidSlotDuration = "некорректный шаг сетки: от 30 до 120 минут, кратный часу или делящий час"
	msgInvalidTimeWindow   = "некорректное рабочее окно: начало должно быть раньше конца"
	msgUnknownClosureDay   = "нераспознанное название закрытого дня"
	msgInvalidInput        = "некорректные настройки"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidSlotDuration):
			h.logger.Warn("PUT /settings - Invalid slot duration: %d", req.TimeSlotDurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidSlotDuration)

		case errors.Is(err, settings.ErrInvalidTimeWindow):
			h.logger.Warn("PUT /settings - Invalid time window: %s-%s",
				req.ReservationStartTime, req.ReservationEndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeWindow)

		case errors.Is(err, settings.ErrUnknownClosureDay):
			h.logger.Warn("PUT /settings - Unknown closure day: %v", req.ClosureDays)
			handlers.RespondBadRequest(w, msgUnknownClosureDay)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated successfully: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
