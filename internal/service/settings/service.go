package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	settingsRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/settings"
	"github.com/SkyCrew-app/reservation-service/internal/schedule"
	"github.com/SkyCrew-app/reservation-service/internal/service/settings/models"
)

// Service сервис для работы с настройками клуба
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get получает текущие настройки клуба
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching business settings")

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: business settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched business settings id=%d", settings.ID)
	return models.FromDomainSettings(settings), nil
}

// Update заменяет настройки клуба целиком.
// Проверяет рабочее окно, шаг сетки и разрешимость названий закрытых дней
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating business settings, closureDays=%v, window=%s-%s, slot=%d",
		req.ClosureDays, req.ReservationStartTime, req.ReservationEndTime, req.TimeSlotDurationMinutes)

	newSettings, err := req.ToDomainSettings()
	if err != nil {
		s.logger.Warn("Update: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.validate(newSettings); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.settingsRepo.Update(ctx, newSettings)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated business settings id=%d", updated.ID)
	return models.FromDomainSettings(updated), nil
}

// validate проверяет настройки против бизнес-правил сетки
func (s *Service) validate(settings *domain.BusinessSettings) error {
	if !settings.ReservationStartTime.IsBefore(settings.ReservationEndTime) {
		return fmt.Errorf("%w: start %s is not before end %s",
			ErrInvalidTimeWindow,
			settings.ReservationStartTime, settings.ReservationEndTime)
	}

	if !domain.ValidSlotDuration(settings.TimeSlotDurationMinutes) {
		return fmt.Errorf("%w: %d minutes (must be within [%d, %d] and keep the grid hour-aligned)",
			ErrInvalidSlotDuration, settings.TimeSlotDurationMinutes,
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	// Опечатку в названии дня отвергаем на записи: при чтении
	// нераспознанные записи молча пропускаются, и клуб "внезапно"
	// перестал бы закрываться
	for _, day := range settings.ClosureDays {
		if _, ok := schedule.ResolveWeekday(day); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownClosureDay, day)
		}
	}

	return nil
}
