package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

func datetime(day, hour, min int) time.Time {
	return time.Date(2025, time.November, day, hour, min, 0, 0, time.UTC)
}

func testFleet() []domain.Aircraft {
	return []domain.Aircraft{
		{ID: 1, RegistrationNumber: "ABC123"},
		{ID: 2, RegistrationNumber: "F-GKQA"},
	}
}

func reservation(id, resourceID int64, start, end time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		ResourceID: resourceID,
		StartTime:  start,
		EndTime:    end,
		Status:     domain.StatusConfirmed,
	}
}

// Сценарий: борт ABC123, бронирование 10:00-12:00, сетка 08:00..18:00 по часу.
// Слот 10:00 - Occupied со span 2, слот 11:00 поглощён, остальные свободны.
func TestResolve_OccupiedSpanAndMerge(t *testing.T) {
	settings := testSettings()
	date := openDay()
	slots := GenerateSlots(date, settings)
	res := []*domain.Reservation{
		reservation(42, 1, datetime(13, 10, 0), datetime(13, 12, 0)),
	}

	grid := Resolve(testFleet(), slots, res, settings, date)

	cell10, ok := grid.CellByLabel(1, types.TimeString("10:00"))
	require.True(t, ok)
	assert.Equal(t, CellOccupied, cell10.State)
	assert.Equal(t, int64(42), cell10.ReservationID)
	assert.Equal(t, 2, cell10.Span)

	cell11, _ := grid.CellByLabel(1, types.TimeString("11:00"))
	assert.Equal(t, CellConsumed, cell11.State)
	assert.Equal(t, int64(42), cell11.ReservationID)

	for _, label := range []types.TimeString{"08:00", "09:00", "12:00", "13:00", "17:00"} {
		cell, _ := grid.CellByLabel(1, label)
		assert.Equal(t, CellFree, cell.State, "slot %s", label)
	}

	// Второй борт не затронут
	for _, slot := range slots {
		cell, _ := grid.CellByLabel(2, slot.Label)
		assert.Equal(t, CellFree, cell.State)
	}
}

func TestResolve_SubSlotReservationTruncatedToEnclosingSlots(t *testing.T) {
	settings := testSettings()
	date := openDay()
	slots := GenerateSlots(date, settings)
	// 10:15-11:45 не выровнено по границам слотов
	res := []*domain.Reservation{
		reservation(7, 1, datetime(13, 10, 15), datetime(13, 11, 45)),
	}

	grid := Resolve(testFleet(), slots, res, settings, date)

	// Слот 10:00 не претендуется (start > slotStart), слот 11:00 - да
	cell10, _ := grid.CellByLabel(1, types.TimeString("10:00"))
	assert.Equal(t, CellFree, cell10.State)

	cell11, _ := grid.CellByLabel(1, types.TimeString("11:00"))
	assert.Equal(t, CellOccupied, cell11.State)
	assert.Equal(t, 2, cell11.Span) // ceil(90м / 60м) = 2

	cell12, _ := grid.CellByLabel(1, types.TimeString("12:00"))
	assert.Equal(t, CellConsumed, cell12.State)
}

func TestResolve_EveryCellClassifiedExactlyOnce(t *testing.T) {
	settings := testSettings()
	date := openDay()
	slots := GenerateSlots(date, settings)
	res := []*domain.Reservation{
		reservation(1, 1, datetime(13, 8, 0), datetime(13, 9, 0)),
		reservation(2, 1, datetime(13, 14, 0), datetime(13, 17, 0)),
		reservation(3, 2, datetime(13, 9, 0), datetime(13, 10, 0)),
	}

	grid := Resolve(testFleet(), slots, res, settings, date)

	// Каждая ячейка классифицирована, покрытие без пропусков
	for _, aircraft := range testFleet() {
		row, ok := grid.Row(aircraft.ID)
		require.True(t, ok)
		require.Len(t, row, len(slots))
		for i, cell := range row {
			assert.Contains(t,
				[]CellState{CellFree, CellOccupied, CellConsumed, CellOutOfHours},
				cell.State, "resource %d slot %d", aircraft.ID, i)
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	settings := testSettings()
	date := openDay()
	slots := GenerateSlots(date, settings)
	res := []*domain.Reservation{
		reservation(42, 1, datetime(13, 10, 0), datetime(13, 12, 0)),
		reservation(43, 2, datetime(13, 15, 0), datetime(13, 16, 0)),
	}

	first := Resolve(testFleet(), slots, res, settings, date)
	second := Resolve(testFleet(), slots, res, settings, date)

	for _, aircraft := range testFleet() {
		rowA, _ := first.Row(aircraft.ID)
		rowB, _ := second.Row(aircraft.ID)
		assert.Equal(t, rowA, rowB)
	}
}

func TestResolve_InactiveReservationsDoNotClaim(t *testing.T) {
	settings := testSettings()
	date := openDay()
	slots := GenerateSlots(date, settings)

	cancelled := reservation(9, 1, datetime(13, 10, 0), datetime(13, 12, 0))
	cancelled.Status = domain.StatusCancelled

	grid := Resolve(testFleet(), slots, []*domain.Reservation{cancelled}, settings, date)

	cell, _ := grid.CellByLabel(1, types.TimeString("10:00"))
	assert.Equal(t, CellFree, cell.State)
}

// Аномалия данных: два пересекающихся бронирования на одном борту.
// Побеждает первое в порядке обхода, сетка не падает.
func TestResolve_OverlappingDataFirstMatchWins(t *testing.T) {
	settings := testSettings()
	date := openDay()
	slots := GenerateSlots(date, settings)
	res := []*domain.Reservation{
		reservation(1, 1, datetime(13, 10, 0), datetime(13, 12, 0)),
		reservation(2, 1, datetime(13, 10, 0), datetime(13, 11, 0)),
	}

	grid := Resolve(testFleet(), slots, res, settings, date)

	cell, _ := grid.CellByLabel(1, types.TimeString("10:00"))
	assert.Equal(t, CellOccupied, cell.State)
	assert.Equal(t, int64(1), cell.ReservationID)
}

func TestResolve_SpanClampedToGridEnd(t *testing.T) {
	settings := testSettings()
	date := openDay()
	slots := GenerateSlots(date, settings)
	// Бронирование выходит за конец рабочего дня
	res := []*domain.Reservation{
		reservation(5, 1, datetime(13, 17, 0), datetime(13, 20, 0)),
	}

	grid := Resolve(testFleet(), slots, res, settings, date)

	cell, _ := grid.CellByLabel(1, types.TimeString("17:00"))
	assert.Equal(t, CellOccupied, cell.State)
	assert.Equal(t, 3, cell.Span)

	// Поглощённые слоты за границей сетки просто не существуют
	row, _ := grid.Row(1)
	assert.Len(t, row, len(slots))
}
