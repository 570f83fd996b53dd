package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vialibre/dispatch-service/internal/domain"
	appointmentRepo "github.com/vialibre/dispatch-service/internal/infra/storage/appointment"
	"github.com/vialibre/dispatch-service/internal/service/appointments/models"
	"github.com/vialibre/dispatch-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type fakeRepo struct {
	byID        map[int64]*domain.Appointment
	listed      []*domain.Appointment
	seenFilters []domain.AppointmentsFilter
	sweptAt     []time.Time
	sweptCount  int64
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.seenFilters = append(f.seenFilters, filter)
	return f.listed, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, reason string) error {
	appt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusCancelled
	appt.CancellationReason = &reason
	now := time.Now()
	appt.CancelledAt = &now
	return nil
}

func (f *fakeRepo) CompleteOverdue(ctx context.Context, now time.Time) (int64, error) {
	f.sweptAt = append(f.sweptAt, now)
	return f.sweptCount, nil
}

var testNow = time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, &fixedClock{now: testNow}, nopLogger{})
}

func scheduledAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:                 id,
		CustomerID:         1,
		ScheduledAt:        testNow.Add(24 * time.Hour),
		EstimatedDuration:  60,
		Status:             status,
		OriginAddress:      "Calle 10 #43-12, Medellín",
		DestinationAddress: "Carrera 48 #20-114, Medellín",
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Appointment{}})

	_, err := svc.GetByID(context.Background(), 99)

	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_SweepsOverdueFirst(t *testing.T) {
	repo := &fakeRepo{
		listed:     []*domain.Appointment{scheduledAppointment(1, domain.StatusScheduled)},
		sweptCount: 2,
	}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, repo.sweptAt, 1)
	assert.Equal(t, testNow, repo.sweptAt[0])
}

func TestList_RejectsUnknownStatusFilter(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("bogus"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_PassesFilterThrough(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	from := testNow
	to := testNow.Add(24 * time.Hour)
	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		From:    &from,
		To:      &to,
		StaffID: ptr.Ptr(int64(4)),
		Status:  ptr.Ptr("scheduled"),
	})

	require.NoError(t, err)
	require.Len(t, repo.seenFilters, 1)
	filter := repo.seenFilters[0]
	assert.Equal(t, &from, filter.From)
	assert.Equal(t, &to, filter.To)
	require.NotNil(t, filter.StaffID)
	assert.Equal(t, int64(4), *filter.StaffID)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.StatusScheduled, *filter.Status)
}

func TestCancel_SetsReason(t *testing.T) {
	appt := scheduledAppointment(1, domain.StatusScheduled)
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: appt}}
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		CancellationReason: "el usuario no puede asistir",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "el usuario no puede asistir", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
}

func TestCancel_TerminalAppointmentRejected(t *testing.T) {
	for _, status := range domain.TerminalStatuses {
		appt := scheduledAppointment(1, status)
		svc := newTestService(&fakeRepo{byID: map[int64]*domain.Appointment{1: appt}})

		_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
			CancellationReason: "tarde",
		})

		require.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
	}
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	appt := scheduledAppointment(1, domain.StatusScheduled)
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: appt}}
	svc := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestUpdateStatus_ForbiddenTransition(t *testing.T) {
	appt := scheduledAppointment(1, domain.StatusPending)
	svc := newTestService(&fakeRepo{byID: map[int64]*domain.Appointment{1: appt}})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: "completed",
	})

	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, appt.Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: "bogus",
	})

	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSweepOverdue_ReportsCount(t *testing.T) {
	repo := &fakeRepo{sweptCount: 3}
	svc := newTestService(repo)

	swept, err := svc.SweepOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), swept)
	require.Len(t, repo.sweptAt, 1)
	assert.Equal(t, testNow, repo.sweptAt[0])
}
