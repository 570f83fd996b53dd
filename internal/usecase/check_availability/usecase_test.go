package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vialibre/dispatch-service/internal/config"
	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	seenFilters  []domain.AppointmentsFilter
	sweptAt      []time.Time
}

func (f *fakeAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.seenFilters = append(f.seenFilters, filter)

	matched := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if filter.StaffID != nil && (appt.StaffID == nil || *appt.StaffID != *filter.StaffID) {
			continue
		}
		if filter.ResourceID != nil && (appt.ResourceID == nil || *appt.ResourceID != *filter.ResourceID) {
			continue
		}
		if filter.From != nil && appt.ScheduledAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !appt.ScheduledAt.Before(*filter.To) {
			continue
		}
		if filter.ExcludeID != nil && appt.ID == *filter.ExcludeID {
			continue
		}
		excluded := false
		for _, st := range filter.ExcludeStatuses {
			if appt.Status == st {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		matched = append(matched, appt)
	}
	return matched, nil
}

func (f *fakeAppointmentRepo) CompleteOverdue(ctx context.Context, now time.Time) (int64, error) {
	f.sweptAt = append(f.sweptAt, now)
	return 0, nil
}

func schedulingConfig() config.SchedulingConfig {
	return config.SchedulingConfig{
		DayStart:                "06:00",
		DayEnd:                  "22:00",
		SlotStepMinutes:         30,
		SlotBufferMinutes:       30,
		ConflictLookbackMinutes: 120,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 3, hour, minute, 0, 0, time.UTC)
}

func TestCheckAvailability_RejectsRequestWithoutParty(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, schedulingConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Start: at(10, 0),
		End:   at(11, 0),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckAvailability_RejectsInvertedWindow(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, schedulingConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID: ptr.Ptr(int64(1)),
		Start:   at(11, 0),
		End:     at(10, 0),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckAvailability_DetectsOverlappingTrip(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			ID:                42,
			StaffID:           ptr.Ptr(int64(1)),
			ScheduledAt:       at(10, 0),
			EstimatedDuration: 60,
			Status:            domain.StatusScheduled,
		}},
	}
	uc := NewUseCase(repo, schedulingConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: ptr.Ptr(int64(1)),
		Start:   at(10, 30),
		End:     at(11, 30),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.NotNil(t, resp.Staff)
	assert.False(t, resp.Staff.Available)
	require.NotNil(t, resp.Staff.ConflictingID)
	assert.Equal(t, int64(42), *resp.Staff.ConflictingID)
	require.NotNil(t, resp.Staff.ConflictingStart)
	assert.Equal(t, at(10, 0), *resp.Staff.ConflictingStart)
	assert.Nil(t, resp.Resource)
}

func TestCheckAvailability_FreeWindow(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			ID:                42,
			StaffID:           ptr.Ptr(int64(1)),
			ScheduledAt:       at(10, 0),
			EstimatedDuration: 60,
			Status:            domain.StatusScheduled,
		}},
	}
	uc := NewUseCase(repo, schedulingConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: ptr.Ptr(int64(1)),
		Start:   at(14, 0),
		End:     at(15, 0),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	require.NotNil(t, resp.Staff)
	assert.True(t, resp.Staff.Available)
	assert.Len(t, repo.sweptAt, 1)
}

func TestCheckAvailability_LookbackWindow(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := NewUseCase(repo, schedulingConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID: ptr.Ptr(int64(1)),
		Start:   at(14, 0),
		End:     at(15, 0),
	})

	require.NoError(t, err)
	require.Len(t, repo.seenFilters, 1)
	filter := repo.seenFilters[0]
	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, at(12, 0), *filter.From)
	assert.Equal(t, at(15, 0), *filter.To)
	assert.Equal(t, domain.TerminalStatuses, filter.ExcludeStatuses)
}

func TestCheckAvailability_TerminalTripsDoNotBlock(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			ID:                7,
			StaffID:           ptr.Ptr(int64(1)),
			ScheduledAt:       at(10, 0),
			EstimatedDuration: 60,
			Status:            domain.StatusCancelled,
		}},
	}
	uc := NewUseCase(repo, schedulingConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: ptr.Ptr(int64(1)),
		Start:   at(10, 0),
		End:     at(11, 0),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestCheckAvailability_ExcludesOwnAppointmentOnEdit(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			ID:                9,
			StaffID:           ptr.Ptr(int64(1)),
			ScheduledAt:       at(10, 0),
			EstimatedDuration: 60,
			Status:            domain.StatusScheduled,
		}},
	}
	uc := NewUseCase(repo, schedulingConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:              ptr.Ptr(int64(1)),
		Start:                at(10, 0),
		End:                  at(11, 0),
		ExcludeAppointmentID: ptr.Ptr(int64(9)),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestCheckAvailability_ChecksBothParties(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{{
			ID:                3,
			ResourceID:        ptr.Ptr(int64(5)),
			ScheduledAt:       at(10, 0),
			EstimatedDuration: 60,
			Status:            domain.StatusConfirmed,
		}},
	}
	uc := NewUseCase(repo, schedulingConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:    ptr.Ptr(int64(1)),
		ResourceID: ptr.Ptr(int64(5)),
		Start:      at(10, 0),
		End:        at(11, 0),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.NotNil(t, resp.Staff)
	assert.True(t, resp.Staff.Available)
	require.NotNil(t, resp.Resource)
	assert.False(t, resp.Resource.Available)
}
