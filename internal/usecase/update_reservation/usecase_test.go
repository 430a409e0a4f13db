package update_reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	reservationRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/reservation"
	"github.com/SkyCrew-app/reservation-service/pkg/ptr"
	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

// Фейки зависимостей

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if filter.ResourceID != nil && r.ResourceID != *filter.ResourceID {
			continue
		}
		if filter.StartDate != nil && r.StartTime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !r.StartTime.Before(*filter.EndDate) {
			continue
		}
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, res *domain.Reservation) error {
	if _, ok := f.reservations[res.ID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	copied := *res
	f.reservations[res.ID] = &copied
	return nil
}

type fakeSettingsRepo struct {
	settings *domain.BusinessSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.BusinessSettings, error) {
	return f.settings, nil
}

// fakeTxManager выполняет функцию без транзакции.
// Непустой err имитирует откат всей транзакции.
type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct{ now time.Time }

func (f *fakeTimeProvider) Now() time.Time { return f.now }

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
func datetime(day, hour, min int) time.Time {
	return time.Date(2025, time.November, day, hour, min, 0, 0, time.UTC)
}

func existingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:                   5,
		ResourceID:           1,
		UserID:               10,
		StartTime:            datetime(13, 10, 0),
		EndTime:              datetime(13, 12, 0),
		Status:               domain.StatusPending,
		Category:             domain.CategoryLocalFlight,
		EstimatedFlightHours: 2.0,
	}
}

func newTestUseCase(repo *fakeReservationRepo) *UseCase {
	uc := NewUseCase(repo, &fakeSettingsRepo{settings: testSettings()}, &fakeTxManager{}, fakeLogger{})
	uc.timeProvider = &fakeTimeProvider{now: datetime(1, 12, 0)}
	return uc
}

// Тесты

func TestExecute_MovesReservation(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: existingReservation(),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		UserID:        10,
		StartTime:     ptr.Ptr(datetime(13, 14, 0)),
		EndTime:       ptr.Ptr(datetime(13, 16, 0)),
	})

	require.NoError(t, err)
	assert.Equal(t, datetime(13, 14, 0), resp.StartTime)
	assert.Equal(t, datetime(13, 16, 0), resp.EndTime)
	assert.Equal(t, 2.0, resp.EstimatedFlightHours)
	assert.Equal(t, datetime(13, 14, 0), repo.reservations[5].StartTime)
}

// Бронирование не конфликтует с собственным старым интервалом
func TestExecute_MoveWithinOwnIntervalAllowed(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: existingReservation(),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		UserID:        10,
		StartTime:     ptr.Ptr(datetime(13, 11, 0)),
		EndTime:       ptr.Ptr(datetime(13, 13, 0)),
	})

	require.NoError(t, err)
	assert.Equal(t, datetime(13, 11, 0), resp.StartTime)
}

func TestExecute_MoveOntoForeignReservationRejected(t *testing.T) {
	other := existingReservation()
	other.ID = 6
	other.UserID = 20
	other.StartTime = datetime(13, 14, 0)
	other.EndTime = datetime(13, 16, 0)

	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: existingReservation(),
		6: other,
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		UserID:        10,
		StartTime:     ptr.Ptr(datetime(13, 15, 0)),
		EndTime:       ptr.Ptr(datetime(13, 17, 0)),
	})

	require.ErrorIs(t, err, ErrSlotConflict)
	// Оригинал не изменён
	assert.Equal(t, datetime(13, 10, 0), repo.reservations[5].StartTime)
}

func TestExecute_UpdatesCategoryAndNotesWithoutMove(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: existingReservation(),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		UserID:        10,
		Category:      ptr.Ptr(domain.CategoryInstruction),
		Notes:         ptr.Ptr("vol avec instructeur"),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.CategoryInstruction), resp.Category)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "vol avec instructeur", *resp.Notes)
	// Интервал не тронут
	assert.Equal(t, datetime(13, 10, 0), resp.StartTime)
}

func TestExecute_ForeignReservationRejected(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: existingReservation(),
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		UserID:        99,
		Notes:         ptr.Ptr("pas le mien"),
	})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_CancelledReservationNotUpdatable(t *testing.T) {
	cancelled := existingReservation()
	cancelled.Status = domain.StatusCancelled

	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: cancelled,
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		UserID:        10,
		Notes:         ptr.Ptr("trop tard"),
	})

	require.ErrorIs(t, err, ErrNotUpdatable)
}

func TestExecute_NotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{reservations: map[int64]*domain.Reservation{}})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 404, UserID: 10})

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_SingleBoundRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: existingReservation(),
	}})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		UserID:        10,
		StartTime:     ptr.Ptr(datetime(13, 14, 0)),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MoveToClosedDayRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: existingReservation(),
	}})

	// 15 ноября 2025 - суббота
	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		UserID:        10,
		StartTime:     ptr.Ptr(datetime(15, 10, 0)),
		EndTime:       ptr.Ptr(datetime(15, 12, 0)),
	})

	require.ErrorIs(t, err, ErrClosedDay)
}

// Проигравший гонку сериализуемых транзакций (SQLSTATE 40001) получает
// конфликт слота, а не внутреннюю ошибку
func TestExecute_SerializationFailureIsSlotConflict(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: existingReservation(),
	}})
	uc.txManager = &fakeTxManager{
		err: fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"}),
	}

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		UserID:        10,
		StartTime:     ptr.Ptr(datetime(13, 14, 0)),
		EndTime:       ptr.Ptr(datetime(13, 16, 0)),
	})

	require.ErrorIs(t, err, ErrSlotConflict)
}
