package get_schedule_grid

import (
	"context"
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/internal/integrations/fleetservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetWithFilter получает бронирования в окне [StartDate, EndDate)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// SettingsRepository интерфейс репозитория настроек клуба
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BusinessSettings, error)
}

// FleetServiceClient интерфейс клиента сервиса флота
type FleetServiceClient interface {
	GetFleetWithGracefulDegradation(ctx context.Context) ([]fleetservice.Aircraft, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
