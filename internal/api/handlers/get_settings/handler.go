package get_settings

import (
	"errors"
	"net/http"

	"github.com/SkyCrew-app/reservation-service/internal/api/handlers"
	"github.com/SkyCrew-app/reservation-service/internal/service/settings"
)

const msgNotFound = "настройки клуба ещё не созданы"

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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("GET /settings - Settings not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /settings - Failed to get settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /settings - Settings retrieved successfully: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
