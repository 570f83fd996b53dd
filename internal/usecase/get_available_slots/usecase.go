package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vialibre/dispatch-service/internal/config"
	"github.com/vialibre/dispatch-service/internal/domain"
	catalogRepo "github.com/vialibre/dispatch-service/internal/infra/storage/catalog"
	"github.com/vialibre/dispatch-service/pkg/types"
)

// UseCase lists the open slots of one working day for a service
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	cfg             config.SchedulingConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new open slots usecase
func NewUseCase(appointmentRepo AppointmentRepository, catalog ServiceCatalog, cfg config.SchedulingConfig, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		cfg:             cfg,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the open slots usecase
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d date=%s staff=%v resource=%v",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StaffID, req.ResourceID)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Fetch the service for its duration
	service, err := uc.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Sweep overdue appointments so stale open trips do not block slots
	if _, err := uc.appointmentRepo.CompleteOverdue(ctx, uc.timeProvider.Now()); err != nil {
		uc.logger.Error("GetAvailableSlots: overdue sweep failed: %v", err)
		return nil, fmt.Errorf("%w: overdue sweep failed: %v", ErrInternal, err)
	}

	// 4. Fetch the day's appointments. Cancelled trips free their window;
	// every other status, terminal or not, keeps it occupied for the day view.
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := domain.AppointmentsFilter{
		From:            &dayStart,
		To:              &dayEnd,
		StaffID:         req.StaffID,
		ResourceID:      req.ResourceID,
		ExcludeStatuses: []domain.AppointmentStatus{domain.StatusCancelled},
	}

	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Enumerate the free windows
	workdayStart, err := types.NewTimeStringFromString(uc.cfg.DayStart)
	if err != nil {
		return nil, fmt.Errorf("%w: bad day_start config: %v", ErrInternal, err)
	}
	workdayEnd, err := types.NewTimeStringFromString(uc.cfg.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: bad day_end config: %v", ErrInternal, err)
	}

	slots, err := enumerateOpenSlots(
		workdayStart, workdayEnd,
		uc.cfg.SlotStepMinutes, uc.cfg.SlotBufferMinutes, service.DurationMinutes,
		appointments,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: slot enumeration failed: %v", err)
		return nil, fmt.Errorf("%w: slot enumeration failed: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d open slots for service=%d on %s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return fromDomainSlots(req.ServiceID, req.Date, slots), nil
}
