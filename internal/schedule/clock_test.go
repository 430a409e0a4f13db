package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

func testSettings() *domain.BusinessSettings {
	return &domain.BusinessSettings{
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

func TestGenerateSlots_HourlyGrid(t *testing.T) {
	slots := GenerateSlots(openDay(), testSettings())

	// 08:00..18:00 с шагом в час - ровно 10 слотов
	require.Len(t, slots, 10)

	assert.Equal(t, types.TimeString("08:00"), slots[0].Label)
	assert.Equal(t, types.TimeString("17:00"), slots[9].Label)
	assert.Equal(t, time.Date(2025, time.November, 13, 8, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2025, time.November, 13, 18, 0, 0, 0, time.UTC), slots[9].End)

	// Последовательность строго возрастает, слоты стыкуются без зазоров
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func TestGenerateSlots_SlotDurationSetsGridStep(t *testing.T) {
	settings := testSettings()
	settings.TimeSlotDurationMinutes = 30

	slots := GenerateSlots(openDay(), settings)

	require.Len(t, slots, 20)
	assert.Equal(t, types.TimeString("08:30"), slots[1].Label)
	assert.Equal(t, 30*time.Minute, slots[0].End.Sub(slots[0].Start))
}

func TestGenerateSlots_PartialTrailingSlotDropped(t *testing.T) {
	settings := testSettings()
	settings.ReservationEndTime = types.TimeString("17:30")

	slots := GenerateSlots(openDay(), settings)

	// Слот 17:00-18:00 вышел бы за время закрытия - не генерируется
	require.Len(t, slots, 9)
	assert.Equal(t, types.TimeString("16:00"), slots[8].Label)
}

func TestGenerateSlots_IncompleteSettings(t *testing.T) {
	t.Run("nil settings", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(openDay(), nil))
	})

	t.Run("missing window bounds", func(t *testing.T) {
		settings := testSettings()
		settings.ReservationStartTime = ""
		settings.ReservationEndTime = ""
		assert.Empty(t, GenerateSlots(openDay(), settings))
	})

	t.Run("start not before end", func(t *testing.T) {
		settings := testSettings()
		settings.ReservationStartTime = types.TimeString("18:00")
		settings.ReservationEndTime = types.TimeString("08:00")
		assert.Empty(t, GenerateSlots(openDay(), settings))
	})
}

func TestGenerateSlots_DefaultDurationWhenUnset(t *testing.T) {
	settings := testSettings()
	settings.TimeSlotDurationMinutes = 0

	slots := GenerateSlots(openDay(), settings)
	require.Len(t, slots, 10)
	assert.Equal(t, time.Hour, slots[0].End.Sub(slots[0].Start))
}
