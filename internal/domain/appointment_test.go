package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusScheduled, StatusConfirmed, true},
		{StatusConfirmed, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},

		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},
		{StatusScheduled, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, false},
		{StatusInProgress, StatusConfirmed, false},

		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusInProgress, StatusCancelled, true},

		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusCompleted, false},
	}

	for _, tc := range cases {
		appt := &Appointment{Status: tc.from}
		assert.Equal(t, tc.allowed, appt.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanBeCancelled(t *testing.T) {
	for _, status := range OpenStatuses {
		appt := &Appointment{Status: status}
		assert.True(t, appt.CanBeCancelled(), "status %s", status)
	}
	for _, status := range TerminalStatuses {
		appt := &Appointment{Status: status}
		assert.False(t, appt.CanBeCancelled(), "status %s", status)
	}
}

func TestBlocksSchedule(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusInProgress}).BlocksSchedule())
	assert.False(t, (&Appointment{Status: StatusNoShow}).BlocksSchedule())
}

func TestEndsAt(t *testing.T) {
	appt := &Appointment{
		ScheduledAt:       time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
		EstimatedDuration: 90,
	}
	assert.Equal(t, time.Date(2025, 6, 3, 11, 30, 0, 0, time.UTC), appt.EndsAt())
}

func TestParseAppointmentStatus(t *testing.T) {
	status, ok := ParseAppointmentStatus("in_progress")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, status)

	_, ok = ParseAppointmentStatus("bogus")
	assert.False(t, ok)
}
