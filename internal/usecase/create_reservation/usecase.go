package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	settingsRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/settings"
	"github.com/SkyCrew-app/reservation-service/internal/integrations/fleetservice"
	"github.com/SkyCrew-app/reservation-service/internal/schedule"
	"github.com/SkyCrew-app/reservation-service/pkg/ptr"
)

// UseCase use case создания бронирования воздушного судна
type UseCase struct {
	reservationRepo ReservationRepository
	settingsRepo    SettingsRepository
	fleetClient     FleetServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	settingsRepo SettingsRepository,
	fleetClient FleetServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		settingsRepo:    settingsRepo,
		fleetClient:     fleetClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Авторитетная проверка конфликтов: внутри сериализуемой транзакции
// заново строится сетка занятости на сутки бронирования (выборка дня
// блокируется FOR UPDATE) и интервал проверяется против неё. Проверка
// на стороне клиента - только мгновенная обратная связь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, resource=%d, start=%s, end=%s",
		req.UserID, req.ResourceID,
		req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронирования в прошлом не принимаются
	if req.StartTime.Before(uc.timeProvider.Now()) {
		uc.logger.Warn("CreateReservation: start time is in the past: %s",
			req.StartTime.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: start time is in the past", ErrInvalidDate)
	}

	// 3. Проверяем существование воздушного судна
	aircraft, err := uc.fleetClient.GetAircraft(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, fleetservice.ErrAircraftNotFound) {
			uc.logger.Warn("CreateReservation: aircraft %d not found", req.ResourceID)
			return nil, ErrAircraftNotFound
		}
		uc.logger.Error("CreateReservation: failed to get aircraft %d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get aircraft: %v", ErrInternal, err)
	}

	var created *domain.Reservation

	// 4. Проверка конфликтов и запись - в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		interval, txErr := uc.validateAgainstGrid(txCtx, req)
		if txErr != nil {
			return txErr
		}

		reservation := &domain.Reservation{
			ResourceID:           req.ResourceID,
			UserID:               req.UserID,
			StartTime:            interval.Start,
			EndTime:              interval.End,
			Status:               domain.StatusPending,
			Category:             req.Category,
			Purpose:              req.Purpose,
			Notes:                req.Notes,
			EstimatedFlightHours: interval.EstimatedFlightHours,
		}

		created, txErr = uc.reservationRepo.Create(txCtx, reservation)
		if txErr != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, txErr)
		}
		return nil
	})
	if err != nil {
		if isSerializationFailure(err) {
			// Откат сериализуемой транзакции: конкурент успел занять
			// те же слоты, для клиента это обычный конфликт
			uc.logger.Warn("CreateReservation: serialization failure, treating as slot conflict: %v", err)
			return nil, ErrSlotConflict
		}
		if isBusinessError(err) {
			uc.logger.Warn("CreateReservation: rejected: %v", err)
		} else if !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateReservation: transaction failed: %v", err)
			err = fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		} else {
			uc.logger.Error("CreateReservation: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation %d for user %d on %s",
		created.ID, created.UserID, aircraft.RegistrationNumber)

	return newResponse(created, aircraft.RegistrationNumber), nil
}

// validateAgainstGrid строит сетку занятости на сутки бронирования и
// проверяет интервал против неё. Вызывается внутри транзакции: выборка
// дня берёт FOR UPDATE, конкурирующее создание на те же сутки ждёт.
func (uc *UseCase) validateAgainstGrid(ctx context.Context, req *Request) (*schedule.ValidatedInterval, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotLoaded
		}
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if !settings.IsComplete() {
		return nil, ErrSettingsNotLoaded
	}

	day := truncateToDay(req.StartTime)

	if schedule.IsClosed(day, settings) {
		return nil, fmt.Errorf("%w: %s", ErrClosedDay, schedule.WeekdayLabel(day.Weekday()))
	}

	slots := schedule.GenerateSlots(day, settings)

	filter := domain.ReservationsFilter{
		ResourceID:      &req.ResourceID,
		StartDate:       &day,
		EndDate:         ptr.Ptr(day.AddDate(0, 0, 1)),
		IncludeInactive: false,
	}
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	resources := []domain.Aircraft{{ID: req.ResourceID}}
	grid := schedule.Resolve(resources, slots, reservations, settings, day)

	interval, err := schedule.ValidateInterval(req.ResourceID, req.StartTime, req.EndTime, grid)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotConflict):
			return nil, ErrSlotConflict
		case errors.Is(err, schedule.ErrZeroDuration):
			return nil, ErrInvalidTimeRange
		default:
			return nil, fmt.Errorf("%w: interval validation: %v", ErrInternal, err)
		}
	}

	return interval, nil
}

// isBusinessError отличает бизнес-отказы от инфраструктурных ошибок
func isBusinessError(err error) bool {
	return errors.Is(err, ErrSettingsNotLoaded) ||
		errors.Is(err, ErrClosedDay) ||
		errors.Is(err, ErrSlotConflict) ||
		errors.Is(err, ErrInvalidTimeRange)
}

// isSerializationFailure распознает SQLSTATE 40001 - Postgres откатил
// сериализуемую транзакцию из-за конкурирующей записи
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
