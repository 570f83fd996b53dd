package calculate_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/internal/integrations/geodistance"
	"github.com/vialibre/dispatch-service/internal/service/pricing"
	pricingModels "github.com/vialibre/dispatch-service/internal/service/pricing/models"
	"github.com/vialibre/dispatch-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakePricing struct {
	lastInput *pricingModels.QuoteInput
	err       error
}

func (f *fakePricing) BuildQuote(ctx context.Context, in *pricingModels.QuoteInput) (*domain.Quote, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Quote{
		DistanceKm:      in.DistanceKm,
		DurationMinutes: in.DurationMinutes,
		TripType:        in.TripType,
		EquipmentType:   in.EquipmentType,
		Pricing:         domain.PricingBreakdown{BasePrice: 30000, TotalPrice: 30000},
	}, nil
}

type fakeDistance struct {
	estimate *geodistance.RouteEstimate
	err      error
	calls    int
}

func (f *fakeDistance) Route(ctx context.Context, origin, destination string) (*geodistance.RouteEstimate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.estimate, nil
}

func quoteRequest() *Request {
	return &Request{
		OriginAddress:      "Calle 10 #43-12, Medellín",
		DestinationAddress: "Carrera 48 #20-114, Medellín",
		DistanceKm:         ptr.Ptr(10.0),
		TripType:           string(domain.TripSencillo),
		ScheduledAt:        time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestCalculateQuote_ExplicitDistanceSkipsRouteEstimation(t *testing.T) {
	pricingSvc := &fakePricing{}
	distance := &fakeDistance{}
	uc := NewUseCase(pricingSvc, distance, nopLogger{})

	resp, err := uc.Execute(context.Background(), quoteRequest())

	require.NoError(t, err)
	assert.Equal(t, 0, distance.calls)
	assert.Equal(t, 10.0, resp.Quote.DistanceKm)
	assert.Equal(t, 30000.0, resp.Quote.Pricing.TotalPrice)
}

func TestCalculateQuote_EstimatesRouteWhenDistanceMissing(t *testing.T) {
	pricingSvc := &fakePricing{}
	distance := &fakeDistance{estimate: &geodistance.RouteEstimate{DistanceKm: 14.2, DurationMinutes: 32}}
	uc := NewUseCase(pricingSvc, distance, nopLogger{})

	req := quoteRequest()
	req.DistanceKm = nil

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, distance.calls)
	assert.Equal(t, 14.2, resp.Quote.DistanceKm)
	assert.Equal(t, 32, resp.Quote.DurationMinutes)
}

func TestCalculateQuote_RouteFailureAbortsQuote(t *testing.T) {
	pricingSvc := &fakePricing{}
	distance := &fakeDistance{err: geodistance.ErrRouteUnavailable}
	uc := NewUseCase(pricingSvc, distance, nopLogger{})

	req := quoteRequest()
	req.DistanceKm = nil

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrDistanceUnavailable)
	assert.Nil(t, pricingSvc.lastInput)
}

func TestCalculateQuote_UnknownTripTypeRejected(t *testing.T) {
	uc := NewUseCase(&fakePricing{}, &fakeDistance{}, nopLogger{})

	req := quoteRequest()
	req.TripType = "TRIPLE"

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculateQuote_EquipmentDefaultsToNone(t *testing.T) {
	pricingSvc := &fakePricing{}
	uc := NewUseCase(pricingSvc, &fakeDistance{}, nopLogger{})

	req := quoteRequest()
	req.EquipmentType = ""

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, pricingSvc.lastInput)
	assert.Equal(t, domain.EquipmentNinguno, pricingSvc.lastInput.EquipmentType)
}

func TestCalculateQuote_ServiceNotFoundMapped(t *testing.T) {
	pricingSvc := &fakePricing{err: pricing.ErrServiceNotFound}
	uc := NewUseCase(pricingSvc, &fakeDistance{}, nopLogger{})

	req := quoteRequest()
	req.ServiceID = ptr.Ptr(int64(9))

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrServiceNotFound)
}
