package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/vialibre/dispatch-service/internal/config"
	"github.com/vialibre/dispatch-service/internal/domain"
)

// UseCase answers whether a staff member and/or resource is free for a
// window. A party is busy when any of its open appointments starts inside
// the window or inside the look-back stretch right before it; the look-back
// keeps a long-running earlier trip from being double booked.
type UseCase struct {
	appointmentRepo AppointmentRepository
	cfg             config.SchedulingConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new availability usecase
func NewUseCase(appointmentRepo AppointmentRepository, cfg config.SchedulingConfig, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		cfg:             cfg,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the availability check
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckAvailability: staff=%v resource=%v window=[%s, %s)",
		req.StaffID, req.ResourceID,
		req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// Sweep overdue appointments first so stale open trips do not block
	if _, err := uc.appointmentRepo.CompleteOverdue(ctx, uc.timeProvider.Now()); err != nil {
		uc.logger.Error("CheckAvailability: overdue sweep failed: %v", err)
		return nil, fmt.Errorf("%w: overdue sweep failed: %v", ErrInternal, err)
	}

	resp := &Response{Available: true}

	if req.StaffID != nil {
		verdict, err := uc.checkParty(ctx, req, domain.AppointmentsFilter{StaffID: req.StaffID})
		if err != nil {
			return nil, err
		}
		resp.Staff = verdict
		resp.Available = resp.Available && verdict.Available
	}

	if req.ResourceID != nil {
		verdict, err := uc.checkParty(ctx, req, domain.AppointmentsFilter{ResourceID: req.ResourceID})
		if err != nil {
			return nil, err
		}
		resp.Resource = verdict
		resp.Available = resp.Available && verdict.Available
	}

	uc.logger.Info("CheckAvailability: available=%v", resp.Available)
	return resp, nil
}

// checkParty looks for a conflicting open appointment for one party.
// The repository window already spans [start - lookback, end), so any
// returned appointment is a conflict.
func (uc *UseCase) checkParty(ctx context.Context, req *Request, filter domain.AppointmentsFilter) (*PartyVerdict, error) {
	lookback := time.Duration(uc.cfg.ConflictLookbackMinutes) * time.Minute
	from := req.Start.Add(-lookback)

	filter.From = &from
	filter.To = &req.End
	filter.ExcludeID = req.ExcludeAppointmentID
	filter.ExcludeStatuses = domain.TerminalStatuses

	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if len(appointments) == 0 {
		return &PartyVerdict{Available: true}, nil
	}

	conflict := appointments[0]
	start := conflict.ScheduledAt
	return &PartyVerdict{
		Available:        false,
		ConflictingID:    &conflict.ID,
		ConflictingStart: &start,
	}, nil
}

func validateRequest(req *Request) error {
	if req.StaffID == nil && req.ResourceID == nil {
		return fmt.Errorf("%w: staffId or resourceId is required", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}
	return nil
}
