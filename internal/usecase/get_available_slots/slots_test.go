package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func apptAt(hour, minute, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		ScheduledAt:       time.Date(2025, 6, 3, hour, minute, 0, 0, time.UTC),
		EstimatedDuration: durationMinutes,
		Status:            domain.StatusScheduled,
	}
}

func slotStarts(slots []domain.OpenSlot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start.String())
	}
	return starts
}

func TestEnumerateOpenSlots_EmptyDay(t *testing.T) {
	slots, err := enumerateOpenSlots(
		mustTime(t, "06:00"), mustTime(t, "22:00"),
		30, 30, 60,
		nil,
	)

	require.NoError(t, err)
	// 60-minute windows every 30 minutes, last one starting at 21:00
	require.Len(t, slots, 31)
	assert.Equal(t, "06:00", slots[0].Start.String())
	assert.Equal(t, "07:00", slots[0].End.String())
	assert.Equal(t, 60, slots[0].DurationMinutes)
	assert.Equal(t, "21:00", slots[len(slots)-1].Start.String())
	assert.Equal(t, "22:00", slots[len(slots)-1].End.String())
}

func TestEnumerateOpenSlots_BusyIntervalPadding(t *testing.T) {
	// One trip 10:00-11:00. With a 30-minute buffer on both the trip and
	// each candidate, every window starting in [08:30, 11:30] collides.
	slots, err := enumerateOpenSlots(
		mustTime(t, "06:00"), mustTime(t, "22:00"),
		30, 30, 60,
		[]*domain.Appointment{apptAt(10, 0, 60)},
	)

	require.NoError(t, err)
	starts := slotStarts(slots)
	assert.Contains(t, starts, "08:00")
	assert.Contains(t, starts, "12:00")
	for _, blocked := range []string{"08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30"} {
		assert.NotContains(t, starts, blocked)
	}
}

func TestEnumerateOpenSlots_MultipleAppointments(t *testing.T) {
	slots, err := enumerateOpenSlots(
		mustTime(t, "06:00"), mustTime(t, "14:00"),
		30, 30, 60,
		[]*domain.Appointment{
			apptAt(7, 0, 60),
			apptAt(10, 0, 30),
		},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"11:30", "12:00", "12:30", "13:00"}, slotStarts(slots))
}

func TestEnumerateOpenSlots_ZeroBuffer(t *testing.T) {
	slots, err := enumerateOpenSlots(
		mustTime(t, "09:00"), mustTime(t, "12:00"),
		30, 0, 60,
		[]*domain.Appointment{apptAt(10, 0, 60)},
	)

	require.NoError(t, err)
	// Back-to-back windows are fine without a buffer
	assert.Equal(t, []string{"09:00", "11:00"}, slotStarts(slots))
}

func TestEnumerateOpenSlots_DurationLongerThanDay(t *testing.T) {
	slots, err := enumerateOpenSlots(
		mustTime(t, "09:00"), mustTime(t, "10:00"),
		30, 30, 90,
		nil,
	)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestEnumerateOpenSlots_FullyBookedDay(t *testing.T) {
	slots, err := enumerateOpenSlots(
		mustTime(t, "08:00"), mustTime(t, "12:00"),
		30, 30, 60,
		[]*domain.Appointment{apptAt(8, 0, 240)},
	)

	require.NoError(t, err)
	assert.Empty(t, slots)
}
