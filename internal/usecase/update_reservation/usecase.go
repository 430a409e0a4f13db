package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	reservationRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/reservation"
	settingsRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/settings"
	"github.com/SkyCrew-app/reservation-service/internal/schedule"
	"github.com/SkyCrew-app/reservation-service/pkg/ptr"
)

// UseCase use case изменения существующего бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case изменения бронирования.
// При переносе времени интервал заново проверяется против сетки занятости
// в сериализуемой транзакции, при этом само бронирование из сетки
// исключается - оно не конфликтует с собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: reservation=%d, user=%d", req.ReservationID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.Reservation

	// 2. Чтение, проверка и запись - в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, txErr := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if txErr != nil {
			if errors.Is(txErr, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, txErr)
		}

		// 3. Менять бронирование может только его владелец
		if existing.UserID != req.UserID {
			return ErrAccessDenied
		}

		// 4. Отменённые, завершённые и истёкшие не меняются
		if !existing.CanBeUpdated() {
			return ErrNotUpdatable
		}

		// 5. Применяем изменения поверх существующего
		changed := *existing
		if req.Category != nil {
			changed.Category = *req.Category
		}
		if req.Purpose != nil {
			changed.Purpose = req.Purpose
		}
		if req.Notes != nil {
			changed.Notes = req.Notes
		}

		// 6. Перенос времени - повторная проверка против сетки
		if req.StartTime != nil {
			if req.StartTime.Before(uc.timeProvider.Now()) {
				return fmt.Errorf("%w: start time is in the past", ErrInvalidDate)
			}

			interval, txErr := uc.validateAgainstGrid(txCtx, existing, *req.StartTime, *req.EndTime)
			if txErr != nil {
				return txErr
			}
			changed.StartTime = interval.Start
			changed.EndTime = interval.End
			changed.EstimatedFlightHours = interval.EstimatedFlightHours
		}

		if txErr := uc.reservationRepo.Update(txCtx, &changed); txErr != nil {
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, txErr)
		}
		updated = &changed
		return nil
	})
	if err != nil {
		if isSerializationFailure(err) {
			// Откат сериализуемой транзакции: конкурент успел занять
			// те же слоты, для клиента это обычный конфликт
			uc.logger.Warn("UpdateReservation: serialization failure, treating as slot conflict: %v", err)
			return nil, ErrSlotConflict
		}
		if isBusinessError(err) {
			uc.logger.Warn("UpdateReservation: rejected: %v", err)
		} else if !errors.Is(err, ErrInternal) {
			uc.logger.Error("UpdateReservation: transaction failed: %v", err)
			err = fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		} else {
			uc.logger.Error("UpdateReservation: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateReservation: updated reservation %d", updated.ID)

	return newResponse(updated), nil
}

// validateAgainstGrid строит сетку занятости на сутки нового интервала
// и проверяет его. Бронирования с тем же ID в сетку не попадают.
func (uc *UseCase) validateAgainstGrid(
	ctx context.Context,
	existing *domain.Reservation,
	start, end time.Time,
) (*schedule.ValidatedInterval, error) {
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

	day := truncateToDay(start)

	if schedule.IsClosed(day, settings) {
		return nil, fmt.Errorf("%w: %s", ErrClosedDay, schedule.WeekdayLabel(day.Weekday()))
	}

	slots := schedule.GenerateSlots(day, settings)

	filter := domain.ReservationsFilter{
		ResourceID:      &existing.ResourceID,
		StartDate:       &day,
		EndDate:         ptr.Ptr(day.AddDate(0, 0, 1)),
		IncludeInactive: false,
	}
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	others := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.ID != existing.ID {
			others = append(others, r)
		}
	}

	resources := []domain.Aircraft{{ID: existing.ResourceID}}
	grid := schedule.Resolve(resources, slots, others, settings, day)

	interval, err := schedule.ValidateInterval(existing.ResourceID, start, end, grid)
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
	return errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrNotUpdatable) ||
		errors.Is(err, ErrSettingsNotLoaded) ||
		errors.Is(err, ErrClosedDay) ||
		errors.Is(err, ErrSlotConflict) ||
		errors.Is(err, ErrInvalidTimeRange) ||
		errors.Is(err, ErrInvalidDate)
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
