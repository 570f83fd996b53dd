package calculate_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/vialibre/dispatch-service/internal/service/pricing"
	pricingModels "github.com/vialibre/dispatch-service/internal/service/pricing/models"
)

// UseCase prices a trip: resolves the driving distance when the operator
// did not type one in, then runs the tariff engine
type UseCase struct {
	pricingService PricingService
	distanceCalc   DistanceCalculator
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase creates a new quote usecase
func NewUseCase(pricingService PricingService, distanceCalc DistanceCalculator, logger Logger) *UseCase {
	return &UseCase{
		pricingService: pricingService,
		distanceCalc:   distanceCalc,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute runs the quote usecase
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateQuote: origin=%q destination=%q distance=%v service=%v",
		req.OriginAddress, req.DestinationAddress, req.DistanceKm, req.ServiceID)

	// 1. Validate input and map enum values
	tripType, equipmentType, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CalculateQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the distance. An explicit value from the operator wins;
	// otherwise estimate the route. A failed estimate aborts the quote.
	distanceKm := 0.0
	durationMinutes := 0
	if req.DistanceKm != nil {
		distanceKm = *req.DistanceKm
	} else {
		estimate, err := uc.distanceCalc.Route(ctx, req.OriginAddress, req.DestinationAddress)
		if err != nil {
			uc.logger.Warn("CalculateQuote: route estimation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrDistanceUnavailable, err)
		}
		distanceKm = estimate.DistanceKm
		durationMinutes = estimate.DurationMinutes
	}

	// 3. Default the trip time to now so surcharges stay deterministic
	scheduledAt := req.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = uc.timeProvider.Now()
	}

	// 4. Run the tariff engine
	quote, err := uc.pricingService.BuildQuote(ctx, &pricingModels.QuoteInput{
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		DistanceKm:         distanceKm,
		DurationMinutes:    durationMinutes,
		TripType:           tripType,
		EquipmentType:      equipmentType,
		ScheduledAt:        scheduledAt,
		FloorOrigin:        req.FloorOrigin,
		FloorDestination:   req.FloorDestination,
		ServiceID:          req.ServiceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrServiceNotFound):
			uc.logger.Warn("CalculateQuote: service id=%v not found", req.ServiceID)
			return nil, ErrServiceNotFound
		case errors.Is(err, pricing.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CalculateQuote: pricing engine error: %v", err)
		return nil, fmt.Errorf("%w: pricing engine error: %v", ErrInternal, err)
	}

	uc.logger.Info("CalculateQuote: total=%.0f options=%d", quote.Pricing.TotalPrice, len(quote.Options))
	return &Response{Quote: quote}, nil
}
