package get_schedule_grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	settingsRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/settings"
	"github.com/SkyCrew-app/reservation-service/internal/integrations/fleetservice"
	"github.com/SkyCrew-app/reservation-service/internal/schedule"
	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

// Фейки зависимостей

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if filter.StartDate != nil && r.StartTime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !r.StartTime.Before(*filter.EndDate) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *domain.BusinessSettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.BusinessSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

type fakeFleetClient struct {
	fleet []fleetservice.Aircraft
	err   error
}

func (f *fakeFleetClient) GetFleetWithGracefulDegradation(_ context.Context) ([]fleetservice.Aircraft, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.fleet, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

// Фикстуры

func testSettings() *domain.BusinessSettings {
	return &domain.BusinessSettings{
		ID:                      1,
		ClosureDays:             []string{"Samedi", "Dimanche"},
		ReservationStartTime:    types.TimeString("08:00"),
		ReservationEndTime:      types.TimeString("18:00"),
		TimeSlotDurationMinutes: 60,
	}
}

// 13 ноября 2025 - четверг, клуб открыт
func openDay() time.Time {
	return time.Date(2025, time.November, 13, 0, 0, 0, 0, time.UTC)
}

func testFleet() []fleetservice.Aircraft {
	return []fleetservice.Aircraft{
		{ID: 1, RegistrationNumber: "ABC123", Available: true},
		{ID: 2, RegistrationNumber: "F-GKQA", Available: true},
	}
}

func newTestUseCase(repo *fakeReservationRepo, settings *fakeSettingsRepo, fleet *fakeFleetClient) *UseCase {
	return NewUseCase(repo, settings, fleet, fakeLogger{})
}

// Тесты

func TestExecute_BuildsGridForOpenDay(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:         42,
				ResourceID: 1,
				UserID:     10,
				StartTime:  time.Date(2025, time.November, 13, 10, 0, 0, 0, time.UTC),
				EndTime:    time.Date(2025, time.November, 13, 12, 0, 0, 0, time.UTC),
				Status:     domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, &fakeSettingsRepo{settings: testSettings()},
		&fakeFleetClient{fleet: testFleet()})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 10, Date: openDay()})

	require.NoError(t, err)
	assert.True(t, resp.SettingsLoaded)
	assert.False(t, resp.Closed)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
	assert.NotEmpty(t, resp.Epoch)
	require.Len(t, resp.Slots, 10)
	require.Len(t, resp.Rows, 2)

	// Строка первого борта: 10:00 занято со span 2, 11:00 поглощено
	row := resp.Rows[0]
	assert.Equal(t, int64(1), row.Aircraft.ID)
	assert.Equal(t, schedule.CellOccupied, row.Cells[2].State)
	assert.Equal(t, int64(42), row.Cells[2].ReservationID)
	assert.Equal(t, 2, row.Cells[2].Span)
	assert.Equal(t, schedule.CellConsumed, row.Cells[3].State)

	// Второй борт целиком свободен
	for _, cell := range resp.Rows[1].Cells {
		assert.Equal(t, schedule.CellFree, cell.State)
	}
}

func TestExecute_TimeOfDayIgnored(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSettingsRepo{settings: testSettings()},
		&fakeFleetClient{fleet: testFleet()})

	// Дата с временем суток усекается до дня
	date := time.Date(2025, time.November, 13, 15, 42, 7, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{UserID: 10, Date: date})

	require.NoError(t, err)
	assert.Equal(t, openDay(), resp.Date)
}

func TestExecute_MissingSettingsIsLoadingState(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{},
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		&fakeFleetClient{fleet: testFleet()})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 10, Date: openDay()})

	require.NoError(t, err)
	assert.False(t, resp.SettingsLoaded)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Rows)
	assert.NotEmpty(t, resp.Epoch)
}

func TestExecute_IncompleteSettingsIsLoadingState(t *testing.T) {
	settings := testSettings()
	settings.ReservationEndTime = ""

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSettingsRepo{settings: settings},
		&fakeFleetClient{fleet: testFleet()})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 10, Date: openDay()})

	require.NoError(t, err)
	assert.False(t, resp.SettingsLoaded)
}

func TestExecute_ClosedSaturday(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSettingsRepo{settings: testSettings()},
		&fakeFleetClient{fleet: testFleet()})

	// 15 ноября 2025 - суббота
	saturday := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{UserID: 10, Date: saturday})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Equal(t, "Samedi", resp.ClosedWeekday)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Rows)
}

func TestExecute_FleetDegradedReturnsSlotsOnly(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSettingsRepo{settings: testSettings()},
		&fakeFleetClient{err: fleetservice.ErrServiceDegraded})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 10, Date: openDay()})

	require.NoError(t, err)
	assert.True(t, resp.SettingsLoaded)
	require.Len(t, resp.Slots, 10)
	assert.Empty(t, resp.Rows)
}

func TestExecute_EpochUniquePerResponse(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSettingsRepo{settings: testSettings()},
		&fakeFleetClient{fleet: testFleet()})

	first, err := uc.Execute(context.Background(), &Request{UserID: 10, Date: openDay()})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{UserID: 10, Date: openDay()})
	require.NoError(t, err)

	assert.NotEqual(t, first.Epoch, second.Epoch)
}

// Запрос без даты строит сетку на сегодня по часам use case
func TestExecute_ZeroDateDefaultsToToday(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSettingsRepo{settings: testSettings()},
		&fakeFleetClient{fleet: testFleet()})
	uc.timeProvider = &fakeTimeProvider{
		now: time.Date(2025, time.November, 13, 15, 42, 7, 0, time.UTC),
	}

	resp, err := uc.Execute(context.Background(), &Request{UserID: 10})

	require.NoError(t, err)
	assert.Equal(t, openDay(), resp.Date)
	assert.True(t, resp.SettingsLoaded)
	require.Len(t, resp.Slots, 10)
}

func TestExecute_MissingUserRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSettingsRepo{settings: testSettings()},
		&fakeFleetClient{fleet: testFleet()})

	_, err := uc.Execute(context.Background(), &Request{Date: openDay()})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoErrorWrappedAsInternal(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{err: errors.New("connection refused")},
		&fakeSettingsRepo{settings: testSettings()},
		&fakeFleetClient{fleet: testFleet()})

	_, err := uc.Execute(context.Background(), &Request{UserID: 10, Date: openDay()})

	require.ErrorIs(t, err, ErrInternal)
}
