package calculate_quote

import (
	"context"
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/internal/integrations/geodistance"
	pricingModels "github.com/vialibre/dispatch-service/internal/service/pricing/models"
)

// PricingService tariff engine contract
type PricingService interface {
	BuildQuote(ctx context.Context, in *pricingModels.QuoteInput) (*domain.Quote, error)
}

// DistanceCalculator driving distance contract
type DistanceCalculator interface {
	Route(ctx context.Context, origin, destination string) (*geodistance.RouteEstimate, error)
}

// TimeProvider clock contract, swapped out in tests
type TimeProvider interface {
	Now() time.Time
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
