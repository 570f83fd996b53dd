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
	assert.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"9:30:00", "24:30", "12:60", "noon", ""} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "value %q", bad)
	}
}

func TestMinutes(t *testing.T) {
	ts := TimeString("06:30")
	m, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 390, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:45")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	got, err = ts.AddMinutes(-45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), got)

	got, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err)

	_, err = TimeString("00:15").AddMinutes(-30)
	assert.Error(t, err)
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	date := time.Date(2025, 6, 3, 0, 0, 0, 0, loc)
	got, err := TimeString("14:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 3, 14, 30, 0, 0, loc), got)
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("06:00"))
}

func TestValue(t *testing.T) {
	v, err := TimeString("08:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00", v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("07:15"))
	assert.Equal(t, TimeString("07:15"), ts)

	// TIME columns arrive with seconds
	require.NoError(t, ts.Scan("07:15:00"))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan([]byte("21:45:00")))
	assert.Equal(t, TimeString("21:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 3, 11, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
