package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

func TestSelection_CommitFlow(t *testing.T) {
	var sel Selection
	assert.Equal(t, SelectionIdle, sel.State())

	sel.PointerDown(1, types.TimeString("09:00"), Cell{State: CellFree})
	assert.Equal(t, SelectionDragging, sel.State())

	sel.PointerEnter(1, types.TimeString("11:00"))

	candidate, ok := sel.PointerUp()
	require.True(t, ok)
	assert.Equal(t, int64(1), candidate.ResourceID)
	assert.Equal(t, types.TimeString("09:00"), candidate.StartLabel)
	assert.Equal(t, types.TimeString("11:00"), candidate.EndLabel)

	// После коммита машина снова в Idle
	assert.Equal(t, SelectionIdle, sel.State())
}

func TestSelection_PointerDownIgnoredOnNonFreeCell(t *testing.T) {
	var sel Selection

	sel.PointerDown(1, types.TimeString("10:00"), Cell{State: CellOccupied, ReservationID: 42})
	assert.Equal(t, SelectionIdle, sel.State())

	sel.PointerDown(1, types.TimeString("07:00"), Cell{State: CellOutOfHours})
	assert.Equal(t, SelectionIdle, sel.State())

	sel.PointerDown(1, types.TimeString("11:00"), Cell{State: CellConsumed, ReservationID: 42})
	assert.Equal(t, SelectionIdle, sel.State())
}

func TestSelection_OtherResourceRowIgnored(t *testing.T) {
	var sel Selection
	sel.PointerDown(1, types.TimeString("09:00"), Cell{State: CellFree})

	// Наведение на строку другого борта не двигает конец выделения
	sel.PointerEnter(2, types.TimeString("12:00"))
	sel.PointerEnter(1, types.TimeString("10:00"))

	candidate, ok := sel.PointerUp()
	require.True(t, ok)
	assert.Equal(t, int64(1), candidate.ResourceID)
	assert.Equal(t, types.TimeString("10:00"), candidate.EndLabel)
}

func TestSelection_ClickWithoutDragCancelled(t *testing.T) {
	var sel Selection
	sel.PointerDown(1, types.TimeString("09:00"), Cell{State: CellFree})

	// Pointer-up без pointer-enter - незавершённый кандидат, молча отброшен
	_, ok := sel.PointerUp()
	assert.False(t, ok)
	assert.Equal(t, SelectionIdle, sel.State())
}

func TestSelection_ReversedDragAllowed(t *testing.T) {
	var sel Selection
	sel.PointerDown(1, types.TimeString("14:00"), Cell{State: CellFree})
	sel.PointerEnter(1, types.TimeString("10:00"))

	// Конец раньше начала - допустимо, нормализация на стороне валидатора
	candidate, ok := sel.PointerUp()
	require.True(t, ok)
	assert.Equal(t, types.TimeString("14:00"), candidate.StartLabel)
	assert.Equal(t, types.TimeString("10:00"), candidate.EndLabel)
}

func TestSelection_ResetDiscardsDrag(t *testing.T) {
	var sel Selection
	sel.PointerDown(1, types.TimeString("09:00"), Cell{State: CellFree})
	sel.PointerEnter(1, types.TimeString("10:00"))

	// Смена даты сбрасывает активное выделение
	sel.Reset()
	assert.Equal(t, SelectionIdle, sel.State())

	_, ok := sel.PointerUp()
	assert.False(t, ok)
}

func TestSelection_PointerUpFromIdleIsNoop(t *testing.T) {
	var sel Selection
	_, ok := sel.PointerUp()
	assert.False(t, ok)
}
