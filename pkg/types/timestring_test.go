package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	for _, bad := range []string{"9:30:00", "25:00", "10:60", "abc", ""} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", bad)
	}
}

func TestMinutes(t *testing.T) {
	mins, err := TimeString("08:15").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 495, mins)

	// Полночь и конец суток
	mins, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, mins)

	mins, err = TimeString("24:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1440, mins)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), ts)

	// Выход за границу суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("08:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("08:00"))

	// Некорректные значения не паникуют
	assert.False(t, TimeString("oops").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("oops"))
}

func TestAt(t *testing.T) {
	date := time.Date(2025, time.November, 13, 0, 0, 0, 0, time.UTC)

	instant, err := TimeString("09:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 13, 9, 30, 0, 0, time.UTC), instant)
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Postgres time возвращает секунды - обрезаются
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("18:00")))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("08:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00", v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
