package settings

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
)

// Стаб database/sql драйвера: запоминает последний запрос с аргументами
// и отдаёт заранее подготовленные строки. QueryRowContext возвращает
// конкретный *sql.Row, поэтому репозиторий проверяется через настоящий
// пул соединений, а не через фейк интерфейса.

type stubDriver struct {
	conn *stubConn
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return d.conn, nil
}

type stubConn struct {
	lastQuery string
	lastArgs  []driver.Value

	columns []string
	rows    [][]driver.Value
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, fmt.Errorf("prepare is not supported by the stub")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, fmt.Errorf("transactions are not supported by the stub")
}

func (c *stubConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.lastQuery = query
	c.lastArgs = make([]driver.Value, len(args))
	for i, a := range args {
		c.lastArgs[i] = a.Value
	}
	return &stubRows{columns: c.columns, rows: c.rows}, nil
}

type stubRows struct {
	columns []string
	rows    [][]driver.Value
	idx     int
}

func (r *stubRows) Columns() []string { return r.columns }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}

var stubSeq int64

func newStubDB(t *testing.T, conn *stubConn) *sql.DB {
	t.Helper()

	name := fmt.Sprintf("settings-stub-%d", atomic.AddInt64(&stubSeq, 1))
	sql.Register(name, &stubDriver{conn: conn})

	db, err := sql.Open(name, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestGet_SelectsMinutesColumn(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	conn := &stubConn{
		columns: []string{
			"id",
			"closure_days",
			"reservation_start_time",
			"reservation_end_time",
			"time_slot_duration_minutes",
			"created_at",
			"updated_at",
		},
		rows: [][]driver.Value{
			{int64(1), []byte(`{Samedi,Dimanche}`), "08:00:00", "18:00:00", int64(60), now, now},
		},
	}
	repo := NewRepository(newStubDB(t, conn))

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	// Имя колонки должно совпадать со схемой business_settings
	assert.Contains(t, conn.lastQuery, "time_slot_duration_minutes")
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, []string{"Samedi", "Dimanche"}, got.ClosureDays)
	assert.Equal(t, "08:00", got.ReservationStartTime.String())
	assert.Equal(t, "18:00", got.ReservationEndTime.String())
	assert.Equal(t, 60, got.TimeSlotDurationMinutes)
}

func TestGet_NoRow(t *testing.T) {
	conn := &stubConn{columns: []string{"id"}}
	repo := NewRepository(newStubDB(t, conn))

	_, err := repo.Get(context.Background())

	require.ErrorIs(t, err, ErrSettingsNotFound)
}

// Update должен работать и на свежей базе, где строки настроек ещё нет:
// upsert по фиксированному id вместо UPDATE по незаполненному s.ID.
func TestUpdate_UpsertsSingletonRow(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	conn := &stubConn{
		columns: []string{"id", "created_at", "updated_at"},
		rows: [][]driver.Value{
			{int64(1), now, now},
		},
	}
	repo := NewRepository(newStubDB(t, conn))

	s := &domain.BusinessSettings{
		ClosureDays:             []string{"Samedi", "Dimanche"},
		ReservationStartTime:    "08:00",
		ReservationEndTime:      "18:00",
		TimeSlotDurationMinutes: 60,
	}

	updated, err := repo.Update(context.Background(), s)

	require.NoError(t, err)
	assert.Contains(t, conn.lastQuery, "INSERT INTO business_settings")
	assert.Contains(t, conn.lastQuery, "ON CONFLICT (id) DO UPDATE")
	assert.Contains(t, conn.lastQuery, "time_slot_duration_minutes")

	// Первый аргумент - фиксированный id единственной строки
	require.NotEmpty(t, conn.lastArgs)
	assert.Equal(t, int64(1), conn.lastArgs[0])

	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, now, updated.CreatedAt)
	assert.Equal(t, now, updated.UpdatedAt)
}
