package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vialibre/dispatch-service/internal/config"
	"github.com/vialibre/dispatch-service/internal/domain"
	catalogRepo "github.com/vialibre/dispatch-service/internal/infra/storage/catalog"
	"github.com/vialibre/dispatch-service/internal/service/pricing/models"
	"github.com/vialibre/dispatch-service/pkg/ptr"
)

type stubTariffRepo struct {
	rules []*domain.TariffRule
}

func (s *stubTariffRepo) List(_ context.Context, _ bool) ([]*domain.TariffRule, error) {
	return s.rules, nil
}

type stubCatalog struct {
	services []*domain.Service
}

func (s *stubCatalog) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (s *stubCatalog) List(_ context.Context, onlyActive bool) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(s.services))
	for _, svc := range s.services {
		if onlyActive && !svc.IsActive {
			continue
		}
		out = append(out, svc)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPricingConfig() config.PricingConfig {
	return config.PricingConfig{
		FallbackPrice:         15000,
		NightSurcharge:        35000,
		SundaySurcharge:       35000,
		FloorSurchargePerStep: 5000,
		FloorThreshold:        3,
		NightStartHour:        18,
		NightEndHour:          6,
	}
}

func newTestService(rules []*domain.TariffRule, services []*domain.Service) *Service {
	return NewService(&stubTariffRepo{rules: rules}, &stubCatalog{services: services}, testPricingConfig(), nopLogger{})
}

// Tuesday at noon, outside every time-based surcharge window
var quietTime = time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

func baseInput() *models.QuoteInput {
	return &models.QuoteInput{
		OriginAddress:      "Carrera 43 # 5-20, Medellín",
		DestinationAddress: "Hospital General, Medellín",
		DistanceKm:         10,
		DurationMinutes:    25,
		TripType:           domain.TripSencillo,
		EquipmentType:      domain.EquipmentRampa,
		ScheduledAt:        quietTime,
	}
}

func TestBuildQuote_RejectsNonPositiveDistance(t *testing.T) {
	svc := newTestService(nil, nil)

	in := baseInput()
	in.DistanceKm = 0

	_, err := svc.BuildQuote(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildQuote_FallbackPriceWhenNoRuleMatches(t *testing.T) {
	svc := newTestService(nil, nil)

	quote, err := svc.BuildQuote(context.Background(), baseInput())
	require.NoError(t, err)

	assert.Equal(t, 15000.0, quote.Pricing.BasePrice)
	assert.Equal(t, 15000.0, quote.Pricing.TotalPrice)
	assert.Nil(t, quote.TariffRuleID)
	assert.Nil(t, quote.ZoneID)
}

func TestBuildQuote_OriginZoneBeatsDestinationAndGeneral(t *testing.T) {
	rules := []*domain.TariffRule{
		{
			ID: 1, ZoneID: ptr.Ptr(int64(10)), ZoneName: ptr.Ptr("Sabaneta"),
			PricingMode: domain.ModeFixed, FixedPrice: ptr.Ptr(30000.0), IsActive: true,
		},
		{
			ID: 2, ZoneID: ptr.Ptr(int64(11)), ZoneName: ptr.Ptr("Envigado"),
			PricingMode: domain.ModeFixed, FixedPrice: ptr.Ptr(40000.0), IsActive: true,
		},
		{
			ID: 3, PricingMode: domain.ModeFixed, FixedPrice: ptr.Ptr(20000.0), IsActive: true,
		},
	}
	svc := newTestService(rules, nil)

	in := baseInput()
	in.OriginAddress = "Calle 10 Sur, envigado"
	in.DestinationAddress = "Parque de Sabaneta"

	quote, err := svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 40000.0, quote.Pricing.BasePrice)
	require.NotNil(t, quote.TariffRuleID)
	assert.Equal(t, int64(2), *quote.TariffRuleID)
	require.NotNil(t, quote.ZoneID)
	assert.Equal(t, int64(11), *quote.ZoneID)
}

func TestBuildQuote_DestinationZoneBeatsGeneral(t *testing.T) {
	rules := []*domain.TariffRule{
		{
			ID: 1, ZoneID: ptr.Ptr(int64(10)), ZoneName: ptr.Ptr("Sabaneta"),
			PricingMode: domain.ModeFixed, FixedPrice: ptr.Ptr(30000.0), IsActive: true,
		},
		{
			ID: 2, PricingMode: domain.ModeFixed, FixedPrice: ptr.Ptr(20000.0), IsActive: true,
		},
	}
	svc := newTestService(rules, nil)

	in := baseInput()
	in.DestinationAddress = "Parque de Sabaneta"

	quote, err := svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 30000.0, quote.Pricing.BasePrice)
	require.NotNil(t, quote.TariffRuleID)
	assert.Equal(t, int64(1), *quote.TariffRuleID)
}

func TestBuildQuote_GeneralRuleWhenNoZoneMatches(t *testing.T) {
	rules := []*domain.TariffRule{
		{
			ID: 1, ZoneID: ptr.Ptr(int64(10)), ZoneName: ptr.Ptr("Sabaneta"),
			PricingMode: domain.ModeFixed, FixedPrice: ptr.Ptr(30000.0), IsActive: true,
		},
		{
			ID: 2, PricingMode: domain.ModeFixed, FixedPrice: ptr.Ptr(20000.0), IsActive: true,
		},
	}
	svc := newTestService(rules, nil)

	quote, err := svc.BuildQuote(context.Background(), baseInput())
	require.NoError(t, err)

	assert.Equal(t, 20000.0, quote.Pricing.BasePrice)
	require.NotNil(t, quote.TariffRuleID)
	assert.Equal(t, int64(2), *quote.TariffRuleID)
	assert.Nil(t, quote.ZoneID)
}

func TestBuildQuote_PerKmClampedToMinPrice(t *testing.T) {
	rules := []*domain.TariffRule{
		{
			ID: 1, PricingMode: domain.ModePerKm,
			PricePerKm: ptr.Ptr(2000.0), MinPrice: ptr.Ptr(25000.0), IsActive: true,
		},
	}
	svc := newTestService(rules, nil)

	in := baseInput()
	in.DistanceKm = 5 // 5 * 2000 = 10000, below the minimum

	quote, err := svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 25000.0, quote.Pricing.BasePrice)

	in.DistanceKm = 20 // 40000, above the minimum
	quote, err = svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 40000.0, quote.Pricing.BasePrice)
}

func TestBuildQuote_DistanceTierSelection(t *testing.T) {
	rules := []*domain.TariffRule{
		{
			ID: 1, PricingMode: domain.ModeByDistanceTier, IsActive: true,
			Tiers: []domain.DistanceTier{
				{MinKm: 0, MaxKm: ptr.Ptr(10.0), Price: 22000},
				{MinKm: 10.01, MaxKm: ptr.Ptr(20.0), Price: 32000},
			},
		},
	}
	svc := newTestService(rules, nil)

	in := baseInput()
	in.DistanceKm = 8

	quote, err := svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 22000.0, quote.Pricing.BasePrice)

	in.DistanceKm = 15
	quote, err = svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 32000.0, quote.Pricing.BasePrice)
}

func TestBuildQuote_TierMissFallsBackToConfiguredPrice(t *testing.T) {
	rules := []*domain.TariffRule{
		{
			ID: 1, PricingMode: domain.ModeByDistanceTier, IsActive: true,
			Tiers: []domain.DistanceTier{
				{MinKm: 0, MaxKm: ptr.Ptr(20.0), Price: 22000},
			},
		},
	}
	svc := newTestService(rules, nil)

	in := baseInput()
	in.DistanceKm = 45 // beyond the last tier

	quote, err := svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, quote.Pricing.BasePrice)
}

func TestBuildQuote_NightAndSundaySurcharges(t *testing.T) {
	svc := newTestService(nil, nil)

	in := baseInput()
	in.ScheduledAt = time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC) // Sunday 19:00

	quote, err := svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, quote.Pricing.Surcharges, 2)
	assert.Equal(t, domain.SurchargeNight, quote.Pricing.Surcharges[0].Name)
	assert.Equal(t, domain.SurchargeSunday, quote.Pricing.Surcharges[1].Name)
	assert.Equal(t, 70000.0, quote.Pricing.TotalSurcharge)
	assert.Equal(t, 85000.0, quote.Pricing.TotalPrice)
}

func TestBuildQuote_EarlyMorningCountsAsNight(t *testing.T) {
	svc := newTestService(nil, nil)

	in := baseInput()
	in.ScheduledAt = time.Date(2025, 6, 3, 5, 30, 0, 0, time.UTC)

	quote, err := svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, quote.Pricing.Surcharges, 1)
	assert.Equal(t, domain.SurchargeNight, quote.Pricing.Surcharges[0].Name)
}

func TestBuildQuote_FloorSurchargeOnlyForCarryChairOptions(t *testing.T) {
	services := []*domain.Service{
		{ID: 1, Name: "Traslado sencillo", Category: domain.CategorySencillo,
			BasePrice: 30000, DurationMinutes: 60, IsActive: true},
		{ID: 2, Name: "Solo silla", Category: domain.CategorySoloSilla,
			BasePrice: 30000, DurationMinutes: 60, IsActive: true},
	}
	svc := newTestService(nil, services)

	in := baseInput()
	in.FloorOrigin = 5 // two floors above the threshold

	quote, err := svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)

	// The trip-level breakdown never carries the floor surcharge
	assert.Empty(t, quote.Pricing.Surcharges)

	require.Len(t, quote.Options, 2)
	byID := map[int64]domain.ServiceOption{}
	for _, opt := range quote.Options {
		byID[opt.ServiceID] = opt
	}

	assert.Equal(t, 30000.0, byID[1].Pricing.TotalPrice)
	require.Len(t, byID[2].Pricing.Surcharges, 1)
	assert.Equal(t, domain.SurchargeFloor, byID[2].Pricing.Surcharges[0].Name)
	assert.Equal(t, 10000.0, byID[2].Pricing.Surcharges[0].Amount)
	assert.Equal(t, 40000.0, byID[2].Pricing.TotalPrice)
}

func TestBuildQuote_AllThreeSurchargesStack(t *testing.T) {
	services := []*domain.Service{
		{ID: 2, Name: "Solo silla", Category: domain.CategorySoloSilla,
			BasePrice: 30000, DurationMinutes: 60, IsActive: true},
	}
	svc := newTestService(nil, services)

	in := baseInput()
	in.ScheduledAt = time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC) // Sunday 19:00
	in.FloorOrigin = 5

	quote, err := svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, quote.Options, 1)
	opt := quote.Options[0]
	require.Len(t, opt.Pricing.Surcharges, 3)

	names := make([]string, 0, 3)
	for _, s := range opt.Pricing.Surcharges {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{domain.SurchargeNight, domain.SurchargeSunday, domain.SurchargeFloor}, names)
	assert.Equal(t, 80000.0, opt.Pricing.TotalSurcharge)
	assert.Equal(t, 110000.0, opt.Pricing.TotalPrice)
}

func TestBuildQuote_OptionsSortedByPriceThenCategoryRank(t *testing.T) {
	services := []*domain.Service{
		{ID: 1, Name: "Solo silla", Category: domain.CategorySoloSilla,
			BasePrice: 30000, DurationMinutes: 60, IsActive: true},
		{ID: 2, Name: "Traslado sencillo", Category: domain.CategorySencillo,
			BasePrice: 30000, DurationMinutes: 60, IsActive: true},
		{ID: 3, Name: "Traslado doble", Category: domain.CategoryDoble,
			BasePrice: 50000, DurationMinutes: 120, IsActive: true},
	}
	svc := newTestService(nil, services)

	quote, err := svc.BuildQuote(context.Background(), baseInput())
	require.NoError(t, err)

	require.Len(t, quote.Options, 3)
	assert.Equal(t, int64(2), quote.Options[0].ServiceID) // same price, better rank
	assert.Equal(t, int64(1), quote.Options[1].ServiceID)
	assert.Equal(t, int64(3), quote.Options[2].ServiceID)

	require.NotNil(t, quote.Recommended)
	assert.Equal(t, int64(2), quote.Recommended.ServiceID)
}

func TestBuildQuote_OptionsFilteredByDistanceCoverage(t *testing.T) {
	services := []*domain.Service{
		{ID: 1, Name: "Corta distancia", Category: domain.CategorySencillo,
			BasePrice: 20000, MaxDistanceKm: ptr.Ptr(5.0), DurationMinutes: 60, IsActive: true},
		{ID: 2, Name: "Larga distancia", Category: domain.CategorySencillo,
			BasePrice: 45000, MinDistanceKm: ptr.Ptr(5.0), DurationMinutes: 90, IsActive: true},
	}
	svc := newTestService(nil, services)

	quote, err := svc.BuildQuote(context.Background(), baseInput()) // 10 km
	require.NoError(t, err)

	require.Len(t, quote.Options, 1)
	assert.Equal(t, int64(2), quote.Options[0].ServiceID)
}

func TestBuildQuote_UnknownServiceID(t *testing.T) {
	svc := newTestService(nil, nil)

	in := baseInput()
	in.ServiceID = ptr.Ptr(int64(99))

	_, err := svc.BuildQuote(context.Background(), in)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestBuildQuote_InactiveServiceID(t *testing.T) {
	services := []*domain.Service{
		{ID: 7, Name: "Retirado", Category: domain.CategorySencillo,
			BasePrice: 30000, DurationMinutes: 60, IsActive: false},
	}
	svc := newTestService(nil, services)

	in := baseInput()
	in.ServiceID = ptr.Ptr(int64(7))

	_, err := svc.BuildQuote(context.Background(), in)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestBuildQuote_ServiceScopedRule(t *testing.T) {
	rules := []*domain.TariffRule{
		{
			ID: 1, ServiceID: ptr.Ptr(int64(7)),
			PricingMode: domain.ModeFixed, FixedPrice: ptr.Ptr(60000.0), IsActive: true,
		},
		{
			ID: 2, PricingMode: domain.ModeFixed, FixedPrice: ptr.Ptr(20000.0), IsActive: true,
		},
	}
	services := []*domain.Service{
		{ID: 7, Name: "Especial", Category: domain.CategorySencillo,
			BasePrice: 30000, DurationMinutes: 60, IsActive: true},
	}
	svc := newTestService(rules, services)

	// Without a service the scoped rule is skipped
	quote, err := svc.BuildQuote(context.Background(), baseInput())
	require.NoError(t, err)
	assert.Equal(t, 20000.0, quote.Pricing.BasePrice)

	in := baseInput()
	in.ServiceID = ptr.Ptr(int64(7))
	quote, err = svc.BuildQuote(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 60000.0, quote.Pricing.BasePrice)
}
