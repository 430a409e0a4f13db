package get_schedule_grid

import (
	"errors"
	"net/http"
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/api/handlers"
	"github.com/SkyCrew-app/reservation-service/internal/api/middleware"
	"github.com/SkyCrew-app/reservation-service/internal/domain"
	getScheduleGrid "github.com/SkyCrew-app/reservation-service/internal/usecase/get_schedule_grid"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	useCase GetScheduleGridUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/grid?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule/grid - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Без параметра date use case строит сетку на сегодня
	var date time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /schedule/grid - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getScheduleGrid.Request{
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		if errors.Is(err, getScheduleGrid.ErrInvalidInput) {
			h.logger.Warn("GET /schedule/grid - Invalid request: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /schedule/grid - Failed to build grid: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/grid - Grid built successfully: user_id=%d, date=%s",
		userID, result.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
