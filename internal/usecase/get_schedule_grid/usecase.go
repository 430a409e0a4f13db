package get_schedule_grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/internal/schedule"
	settingsRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/settings"
	"github.com/SkyCrew-app/reservation-service/pkg/ptr"
)

// UseCase use case построения сетки занятости флота на дату
type UseCase struct {
	reservationRepo ReservationRepository
	settingsRepo    SettingsRepository
	fleetClient     FleetServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	settingsRepo SettingsRepository,
	fleetClient FleetServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		settingsRepo:    settingsRepo,
		fleetClient:     fleetClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case построения сетки.
// Сетка - чисто производное состояние: слоты, флот и бронирования
// берутся снимком на момент запроса и раскладываются заново; ничего
// не сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetScheduleGrid: user=%d, date=%s",
		req.UserID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetScheduleGrid: validation failed: %v", err)
		return nil, err
	}

	// Без явной даты сетка строится на сегодня
	date := req.Date
	if date.IsZero() {
		date = uc.timeProvider.Now()
	}
	day := truncateToDay(date)
	resp := &Response{
		Date:  day,
		Epoch: uuid.NewString(),
	}

	// 2. Получаем настройки клуба
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetScheduleGrid: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// Настройки не созданы или неполны - состояние загрузки, не ошибка
	if !settings.IsComplete() {
		uc.logger.Info("GetScheduleGrid: settings incomplete, returning loading state")
		return resp, nil
	}
	resp.SettingsLoaded = true
	resp.SlotDurationMinutes = settings.SlotDuration()

	// 3. Закрытый день - сетка не строится
	if schedule.IsClosed(day, settings) {
		resp.Closed = true
		resp.ClosedWeekday = schedule.WeekdayLabel(day.Weekday())
		uc.logger.Info("GetScheduleGrid: club is closed on %s (%s)",
			day.Format(domain.DateFormat), resp.ClosedWeekday)
		return resp, nil
	}

	// 4. Генерируем слоты рабочего дня
	resp.Slots = schedule.GenerateSlots(day, settings)

	// 5. Получаем флот (с graceful degradation - при недоступности
	// сервиса флота отдаем слоты без строк, клиент покажет загрузку)
	fleet, err := uc.fleetClient.GetFleetWithGracefulDegradation(ctx)
	if err != nil {
		uc.logger.Warn("GetScheduleGrid: fleet degraded, returning grid without rows: %v", err)
		return resp, nil
	}

	resources := make([]domain.Aircraft, len(fleet))
	for i, a := range fleet {
		resources[i] = domain.Aircraft{ID: a.ID, RegistrationNumber: a.RegistrationNumber}
	}

	// 6. Получаем бронирования на сутки [day, day+1)
	filter := domain.ReservationsFilter{
		StartDate:       &day,
		EndDate:         ptr.Ptr(day.AddDate(0, 0, 1)),
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetScheduleGrid: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Раскладываем занятость по ячейкам
	grid := schedule.Resolve(resources, resp.Slots, reservations, settings, day)

	resp.Rows = make([]ResourceRow, len(resources))
	for i, aircraft := range resources {
		cells, _ := grid.Row(aircraft.ID)
		resp.Rows[i] = ResourceRow{Aircraft: aircraft, Cells: cells}
	}

	uc.logger.Info("GetScheduleGrid: built grid for date=%s, slots=%d, resources=%d, reservations=%d",
		day.Format(domain.DateFormat), len(resp.Slots), len(resources), len(reservations))

	return resp, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
