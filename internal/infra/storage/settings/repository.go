package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/pkg/dbmetrics"
	"github.com/SkyCrew-app/reservation-service/pkg/psqlbuilder"
)

var settingsColumns = []string{
	"id",
	"closure_days",
	"reservation_start_time",
	"reservation_end_time",
	"time_slot_duration_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек клуба.
// Таблица business_settings хранит единственную строку с фиксированным
// id; настройки заменяются целиком, частичных обновлений нет.
type Repository struct {
	db dbmetrics.DBExecutor
}

// singletonID фиксированный id единственной строки настроек
const singletonID = 1

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает текущие настройки клуба
func (r *Repository) Get(ctx context.Context) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("business_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.BusinessSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		pq.Array(&s.ClosureDays),
		&s.ReservationStartTime,
		&s.ReservationEndTime,
		&s.TimeSlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update создает или заменяет настройки клуба целиком.
// Upsert по фиксированному id: на свежей базе строка настроек ещё
// не существует и первый PUT должен её создать, а не получить 404.
func (r *Repository) Update(ctx context.Context, s *domain.BusinessSettings) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_settings").
		Columns(
			"id",
			"closure_days",
			"reservation_start_time",
			"reservation_end_time",
			"time_slot_duration_minutes",
		).
		Values(
			singletonID,
			pq.Array(s.ClosureDays),
			s.ReservationStartTime,
			s.ReservationEndTime,
			s.TimeSlotDurationMinutes,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			closure_days = EXCLUDED.closure_days,
			reservation_start_time = EXCLUDED.reservation_start_time,
			reservation_end_time = EXCLUDED.reservation_end_time,
			time_slot_duration_minutes = EXCLUDED.time_slot_duration_minutes,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
