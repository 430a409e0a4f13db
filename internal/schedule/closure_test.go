package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
)

func TestNormalizeDayName(t *testing.T) {
	assert.Equal(t, "samedi", NormalizeDayName("Samedi"))
	assert.Equal(t, "decembre", NormalizeDayName("Décembre"))
	assert.Equal(t, "lundi", NormalizeDayName("  LUNDI "))
	assert.Equal(t, "sunday", NormalizeDayName("Sunday"))
}

func TestResolveWeekday(t *testing.T) {
	cases := []struct {
		name     string
		expected time.Weekday
		ok       bool
	}{
		{"Samedi", time.Saturday, true},
		{"dimanche", time.Sunday, true},
		{"MERCREDI", time.Wednesday, true},
		{"Wednesday", time.Wednesday, true},
		{"3", time.Wednesday, true},
		{"0", time.Sunday, true},
		{"férié", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		wd, ok := ResolveWeekday(tc.name)
		assert.Equal(t, tc.ok, ok, "ResolveWeekday(%q)", tc.name)
		if tc.ok {
			assert.Equal(t, tc.expected, wd, "ResolveWeekday(%q)", tc.name)
		}
	}
}

func TestIsClosed_SaturdayClosure(t *testing.T) {
	settings := testSettings() // closureDays: Samedi, Dimanche

	saturday := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.November, 16, 0, 0, 0, 0, time.UTC)
	thursday := openDay()

	assert.True(t, IsClosed(saturday, settings))
	assert.True(t, IsClosed(sunday, settings))
	assert.False(t, IsClosed(thursday, settings))
}

func TestIsClosed_AccentAndCaseInsensitive(t *testing.T) {
	settings := testSettings()
	// Запись с диакритикой и произвольным регистром должна совпасть
	settings.ClosureDays = []string{"SAMEDI", "dîmanche"}

	saturday := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.November, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsClosed(saturday, settings))
	assert.True(t, IsClosed(sunday, settings))
}

func TestIsClosed_UnknownEntriesIgnored(t *testing.T) {
	settings := testSettings()
	settings.ClosureDays = []string{"jour férié", "Mardi"}

	tuesday := time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, time.November, 12, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsClosed(tuesday, settings))
	assert.False(t, IsClosed(wednesday, settings))
}

func TestIsClosed_NoSettings(t *testing.T) {
	assert.False(t, IsClosed(openDay(), nil))
	assert.False(t, IsClosed(openDay(), &domain.BusinessSettings{}))
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Samedi", WeekdayLabel(time.Saturday))
	assert.Equal(t, "Lundi", WeekdayLabel(time.Monday))
}
