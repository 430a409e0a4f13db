package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	settingsRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/settings"
	"github.com/SkyCrew-app/reservation-service/internal/service/settings/models"
)

// Фейк репозитория настроек

type fakeSettingsRepo struct {
	settings *domain.BusinessSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.BusinessSettings, error) {
	if f.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *domain.BusinessSettings) (*domain.BusinessSettings, error) {
	updated := *s
	updated.ID = 1
	updated.UpdatedAt = time.Now()
	f.settings = &updated
	return &updated, nil
}

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		ClosureDays:             []string{"Samedi", "Dimanche"},
		ReservationStartTime:    "08:00",
		ReservationEndTime:      "18:00",
		TimeSlotDurationMinutes: 60,
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, fakeLogger{})

	_, err := svc.Get(context.Background())

	require.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestUpdate_ReplacesSettings(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, fakeLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{"Samedi", "Dimanche"}, resp.ClosureDays)
	assert.Equal(t, "08:00", resp.ReservationStartTime)
	assert.Equal(t, 60, resp.TimeSlotDurationMinutes)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, resp.ClosureDays, got.ClosureDays)
}

func TestUpdate_SlotDurationValidation(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, fakeLogger{})

	// Делители и кратные часа в пределах [30, 120] проходят
	for _, ok := range []int{30, 60, 120} {
		req := validUpdateRequest()
		req.TimeSlotDurationMinutes = ok
		_, err := svc.Update(context.Background(), req)
		assert.NoError(t, err, "duration %d", ok)
	}

	// 45 и 90 ломают выравнивание по часам, 15 и 180 вне диапазона
	for _, bad := range []int{45, 90, 15, 180, 0} {
		req := validUpdateRequest()
		req.TimeSlotDurationMinutes = bad
		_, err := svc.Update(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlotDuration, "duration %d", bad)
	}
}

func TestUpdate_InvertedWindowRejected(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, fakeLogger{})

	req := validUpdateRequest()
	req.ReservationStartTime = "18:00"
	req.ReservationEndTime = "08:00"

	_, err := svc.Update(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidTimeWindow)
}

func TestUpdate_UnknownClosureDayRejected(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, fakeLogger{})

	req := validUpdateRequest()
	req.ClosureDays = []string{"Samedi", "Blursday"}

	_, err := svc.Update(context.Background(), req)

	require.ErrorIs(t, err, ErrUnknownClosureDay)
}

// Названия дней принимаются без учёта регистра и диакритики
func TestUpdate_ClosureDaySpellingVariants(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, fakeLogger{})

	req := validUpdateRequest()
	req.ClosureDays = []string{"samedi", "DIMANCHE", "Lundi", "2"}

	_, err := svc.Update(context.Background(), req)

	require.NoError(t, err)
}

func TestUpdate_InvalidTimeFormatRejected(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, fakeLogger{})

	req := validUpdateRequest()
	req.ReservationStartTime = "8h00"

	_, err := svc.Update(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}
