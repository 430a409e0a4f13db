package settings

import (
	"context"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек клуба
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BusinessSettings, error)
	Update(ctx context.Context, s *domain.BusinessSettings) (*domain.BusinessSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
