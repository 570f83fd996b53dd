package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
	catalogRepo "github.com/vialibre/dispatch-service/internal/infra/storage/catalog"
	apptModels "github.com/vialibre/dispatch-service/internal/service/appointments/models"
	"github.com/vialibre/dispatch-service/internal/usecase/calculate_quote"
	"github.com/vialibre/dispatch-service/internal/usecase/check_availability"
)

// UseCase books an appointment. Conflict check, pricing and insert run in
// one serializable transaction so two operators cannot book the same
// window for the same staff member or vehicle.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	quoteCalc       QuoteCalculator
	availability    AvailabilityChecker
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new booking usecase
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog ServiceCatalog,
	quoteCalc QuoteCalculator,
	availability AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		quoteCalc:       quoteCalc,
		availability:    availability,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the booking usecase
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d staff=%v resource=%v service=%v at=%s",
		req.CustomerID, req.StaffID, req.ResourceID, req.ServiceID,
		req.ScheduledAt.Format(time.RFC3339))

	// 1. Validate input
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the trip duration: explicit value, then service duration,
	// then the default
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	var created *domain.Appointment

	// 3. Check, price and insert under a serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Sweep overdue appointments so they do not count as conflicts
		if _, err := uc.appointmentRepo.CompleteOverdue(txCtx, now); err != nil {
			uc.logger.Error("CreateAppointment: overdue sweep failed: %v", err)
			return fmt.Errorf("%w: overdue sweep failed: %v", ErrInternal, err)
		}

		// 3.2. Conflict check for the assigned staff member and resource
		if req.StaffID != nil || req.ResourceID != nil {
			verdict, err := uc.availability.Execute(txCtx, &check_availability.Request{
				StaffID:    req.StaffID,
				ResourceID: req.ResourceID,
				Start:      req.ScheduledAt,
				End:        req.ScheduledAt.Add(time.Duration(duration) * time.Minute),
			})
			if err != nil {
				uc.logger.Error("CreateAppointment: availability check failed: %v", err)
				return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
			}
			if !verdict.Available {
				uc.logger.Warn("CreateAppointment: window taken for staff=%v resource=%v at=%s",
					req.StaffID, req.ResourceID, req.ScheduledAt.Format(time.RFC3339))
				return ErrTimeSlotConflict
			}
		}

		// 3.3. Price the trip and freeze the breakdown
		quoteResp, err := uc.quoteCalc.Execute(txCtx, &calculate_quote.Request{
			OriginAddress:      req.OriginAddress,
			DestinationAddress: req.DestinationAddress,
			DistanceKm:         req.DistanceKm,
			TripType:           req.TripType,
			EquipmentType:      req.EquipmentType,
			ScheduledAt:        req.ScheduledAt,
			FloorOrigin:        req.FloorOrigin,
			FloorDestination:   req.FloorDestination,
			ServiceID:          req.ServiceID,
		})
		if err != nil {
			switch {
			case errors.Is(err, calculate_quote.ErrDistanceUnavailable):
				return fmt.Errorf("%w: %v", ErrDistanceUnavailable, err)
			case errors.Is(err, calculate_quote.ErrServiceNotFound):
				return ErrServiceNotFound
			case errors.Is(err, calculate_quote.ErrInvalidInput):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateAppointment: quote failed: %v", err)
			return fmt.Errorf("%w: quote failed: %v", ErrInternal, err)
		}

		quote := quoteResp.Quote
		snapshot, err := quote.Snapshot()
		if err != nil {
			uc.logger.Error("CreateAppointment: snapshot failed: %v", err)
			return fmt.Errorf("%w: snapshot failed: %v", ErrInternal, err)
		}

		// The booked service's own option total wins over the zone price
		totalAmount := quote.Pricing.TotalPrice
		if req.ServiceID != nil {
			for _, opt := range quote.Options {
				if opt.ServiceID == *req.ServiceID {
					totalAmount = opt.Pricing.TotalPrice
					break
				}
			}
		}

		status := domain.StatusPending
		if req.Confirmed {
			status = domain.StatusScheduled
		}

		// 3.4. Insert
		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerID:         req.CustomerID,
			StaffID:            req.StaffID,
			ResourceID:         req.ResourceID,
			ServiceID:          req.ServiceID,
			EquipmentType:      quote.EquipmentType,
			ScheduledAt:        req.ScheduledAt,
			EstimatedDuration:  duration,
			Status:             status,
			TotalAmount:        totalAmount,
			OriginAddress:      req.OriginAddress,
			DestinationAddress: req.DestinationAddress,
			PricingSnapshot:    snapshot,
			Notes:              req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: insert failed: %v", err)
			return fmt.Errorf("%w: insert failed: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: appointment id=%d created, total=%.0f",
		created.ID, created.TotalAmount)

	return &Response{Appointment: apptModels.FromDomainAppointment(created)}, nil
}

func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if req.DurationMinutes > 0 {
		return req.DurationMinutes, nil
	}

	if req.ServiceID != nil {
		service, err := uc.catalog.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", *req.ServiceID)
				return 0, ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.IsActive {
			uc.logger.Warn("CreateAppointment: service id=%d is inactive", *req.ServiceID)
			return 0, ErrServiceNotFound
		}
		return service.DurationMinutes, nil
	}

	return defaultDurationMinutes, nil
}
