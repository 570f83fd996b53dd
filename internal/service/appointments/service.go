package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/vialibre/dispatch-service/internal/domain"
	appointmentRepo "github.com/vialibre/dispatch-service/internal/infra/storage/appointment"
	"github.com/vialibre/dispatch-service/internal/service/appointments/models"
)

// Service appointment lifecycle and calendar queries
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates a new appointments service
func NewService(appointmentRepo AppointmentRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID fetches one appointment
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List returns the calendar listing for the given filter. Overdue open
// appointments are swept to completed first so the listing reflects
// reality even when nobody closed them by hand.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if _, err := s.SweepOverdue(ctx); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel moves an appointment to cancelled with a reason.
// Terminal appointments cannot be cancelled again.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d is already %s", id, appt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return s.GetByID(ctx, id)
}

// UpdateStatus applies a lifecycle transition after validating it
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	status, ok := domain.ParseAppointmentStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !appt.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s forbidden for appointment id=%d", appt.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved %s -> %s", id, appt.Status, status)
	return s.GetByID(ctx, id)
}

// SweepOverdue marks every open appointment whose scheduled time already
// passed as completed. Idempotent; safe to run before any calendar query.
func (s *Service) SweepOverdue(ctx context.Context) (int64, error) {
	swept, err := s.appointmentRepo.CompleteOverdue(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("SweepOverdue: repository error: %v", err)
		return 0, fmt.Errorf("%w: SweepOverdue - repository error: %v", ErrInternal, err)
	}
	if swept > 0 {
		s.logger.Info("SweepOverdue: %d overdue appointments completed", swept)
	}
	return swept, nil
}
