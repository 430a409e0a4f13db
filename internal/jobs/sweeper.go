// Package jobs содержит фоновые задачи сервиса бронирований.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// ReservationRepository интерфейс репозитория для фоновой уборки
type ReservationRepository interface {
	// MarkCompletedBefore переводит CONFIRMED бронирования, закончившиеся
	// до cutoff, в COMPLETED
	MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// ExpirePendingBefore переводит PENDING бронирования, закончившиеся
	// до cutoff, в EXPIRED
	ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper фоновая уборка прошедших бронирований: подтверждённые
// становятся завершёнными, неподтверждённые - истёкшими. Сетка
// занятости от этого не зависит (прошедшие дни не редактируются),
// уборка нужна корректной истории налёта.
type Sweeper struct {
	reservationRepo ReservationRepository
	logger          Logger
	schedule        string
	timeout         time.Duration

	cron *cron.Cron
}

// NewSweeper создает новый экземпляр уборщика.
// schedule - стандартное cron-выражение, например "0 3 * * *".
func NewSweeper(reservationRepo ReservationRepository, schedule string, logger Logger) *Sweeper {
	return &Sweeper{
		reservationRepo: reservationRepo,
		logger:          logger,
		schedule:        schedule,
		timeout:         5 * time.Minute,
	}
}

// Start регистрирует задачу в планировщике и запускает его
func (s *Sweeper) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, s.Run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Sweeper: started with schedule %q", s.schedule)
	return nil
}

// Stop останавливает планировщик, дожидаясь текущего прогона
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("Sweeper: stopped")
}

// Run выполняет один прогон уборки. Вызывается планировщиком,
// но доступен и напрямую (ручной прогон при старте).
func (s *Sweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	now := time.Now()

	completed, err := s.reservationRepo.MarkCompletedBefore(ctx, now)
	if err != nil {
		s.logger.Error("Sweeper: failed to mark completed reservations: %v", err)
	} else if completed > 0 {
		s.logger.Info("Sweeper: marked %d reservations as completed", completed)
	}

	expired, err := s.reservationRepo.ExpirePendingBefore(ctx, now)
	if err != nil {
		s.logger.Error("Sweeper: failed to expire pending reservations: %v", err)
	} else if expired > 0 {
		s.logger.Info("Sweeper: expired %d pending reservations", expired)
	}
}
