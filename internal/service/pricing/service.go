package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/vialibre/dispatch-service/internal/config"
	"github.com/vialibre/dispatch-service/internal/domain"
	catalogRepo "github.com/vialibre/dispatch-service/internal/infra/storage/catalog"
	"github.com/vialibre/dispatch-service/internal/service/pricing/models"
)

// Service the tariff engine. Resolves the zone rule for a trip, prices it
// by the rule's mode and builds the priced catalog options with surcharges.
type Service struct {
	tariffRepo TariffRepository
	catalog    ServiceCatalog
	cfg        config.PricingConfig
	logger     Logger
}

// NewService creates a new pricing service
func NewService(tariffRepo TariffRepository, catalog ServiceCatalog, cfg config.PricingConfig, logger Logger) *Service {
	return &Service{
		tariffRepo: tariffRepo,
		catalog:    catalog,
		cfg:        cfg,
		logger:     logger,
	}
}

// BuildQuote prices a trip with an already resolved distance.
//
// Rule resolution is first match wins: a rule whose zone name appears in
// the origin address, then in the destination address, then the general
// rule without a zone. No match prices the trip at the configured fallback
// amount, which is not an error.
func (s *Service) BuildQuote(ctx context.Context, in *models.QuoteInput) (*domain.Quote, error) {
	if in.DistanceKm <= 0 {
		return nil, fmt.Errorf("%w: distance must be positive", ErrInvalidInput)
	}

	if in.ServiceID != nil {
		svc, err := s.catalog.GetByID(ctx, *in.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				s.logger.Warn("BuildQuote: service id=%d not found", *in.ServiceID)
				return nil, ErrServiceNotFound
			}
			s.logger.Error("BuildQuote: catalog error for service id=%d: %v", *in.ServiceID, err)
			return nil, fmt.Errorf("%w: BuildQuote - catalog error: %v", ErrInternal, err)
		}
		if !svc.IsActive {
			s.logger.Warn("BuildQuote: service id=%d is inactive", *in.ServiceID)
			return nil, ErrServiceNotFound
		}
	}

	rules, err := s.tariffRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("BuildQuote: tariff repository error: %v", err)
		return nil, fmt.Errorf("%w: BuildQuote - tariff repository error: %v", ErrInternal, err)
	}

	rule := s.resolveRule(rules, in)
	base := s.basePrice(rule, in.DistanceKm)

	breakdown := s.breakdown(base, s.surcharges(in.ScheduledAt, "", in.MaxFloor()))

	options, err := s.buildOptions(ctx, in)
	if err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		DistanceKm:      in.DistanceKm,
		DurationMinutes: in.DurationMinutes,
		TripType:        in.TripType,
		EquipmentType:   in.EquipmentType,
		Pricing:         breakdown,
		Options:         options,
	}
	if rule != nil {
		quote.ZoneID = rule.ZoneID
		quote.TariffRuleID = &rule.ID
	}
	if len(options) > 0 {
		quote.Recommended = &options[0]
	}

	s.logger.Info("BuildQuote: distance_km=%.2f rule=%v base=%.0f total=%.0f options=%d",
		in.DistanceKm, quote.TariffRuleID, base, breakdown.TotalPrice, len(options))

	return quote, nil
}

// resolveRule picks the tariff rule for the trip. Zone matching is a
// case-insensitive substring check of the zone name against the address,
// matching how operators type municipality names into the form.
func (s *Service) resolveRule(rules []*domain.TariffRule, in *models.QuoteInput) *domain.TariffRule {
	var destRule, generalRule *domain.TariffRule

	for _, rule := range rules {
		if !rule.AppliesToService(in.ServiceID) {
			continue
		}
		if rule.IsGeneral() {
			if generalRule == nil {
				generalRule = rule
			}
			continue
		}
		if rule.ZoneName == nil {
			continue
		}
		if matchesAddress(*rule.ZoneName, in.OriginAddress) {
			return rule
		}
		if destRule == nil && matchesAddress(*rule.ZoneName, in.DestinationAddress) {
			destRule = rule
		}
	}

	if destRule != nil {
		return destRule
	}
	return generalRule
}

// basePrice prices the distance by the rule's mode and clamps to the
// rule's minimum. Rounded to the nearest whole unit.
func (s *Service) basePrice(rule *domain.TariffRule, distanceKm float64) float64 {
	price := s.cfg.FallbackPrice

	if rule != nil {
		switch rule.PricingMode {
		case domain.ModeFixed:
			if rule.FixedPrice != nil {
				price = *rule.FixedPrice
			}
		case domain.ModePerKm:
			if rule.PricePerKm != nil {
				price = distanceKm * *rule.PricePerKm
			}
		case domain.ModeByDistanceTier:
			if tier := rule.TierFor(distanceKm); tier != nil {
				price = tier.Price
			} else {
				s.logger.Warn("basePrice: rule id=%d has no tier covering %.2f km, using fallback price", rule.ID, distanceKm)
			}
		}

		if rule.MinPrice != nil && price < *rule.MinPrice {
			price = *rule.MinPrice
		}
	}

	return math.Round(price)
}

// buildOptions prices every active catalog service covering the distance
func (s *Service) buildOptions(ctx context.Context, in *models.QuoteInput) ([]domain.ServiceOption, error) {
	services, err := s.catalog.List(ctx, true)
	if err != nil {
		s.logger.Error("buildOptions: catalog error: %v", err)
		return nil, fmt.Errorf("%w: buildOptions - catalog error: %v", ErrInternal, err)
	}

	options := make([]domain.ServiceOption, 0, len(services))
	for _, svc := range services {
		if !svc.CoversDistance(in.DistanceKm) {
			continue
		}
		options = append(options, domain.ServiceOption{
			ServiceID:       svc.ID,
			ServiceName:     svc.Name,
			Category:        svc.Category,
			DurationMinutes: svc.DurationMinutes,
			Pricing:         s.breakdown(svc.BasePrice, s.surcharges(in.ScheduledAt, svc.Category, in.MaxFloor())),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Pricing.TotalPrice != options[j].Pricing.TotalPrice {
			return options[i].Pricing.TotalPrice < options[j].Pricing.TotalPrice
		}
		return options[i].Category.Rank() < options[j].Category.Rank()
	})

	return options, nil
}

// surcharges computes the additive adjustments for the trip time and the
// building floors. The floor surcharge only applies to carry-chair services.
func (s *Service) surcharges(at time.Time, category domain.ServiceCategory, maxFloor int) []domain.Surcharge {
	surcharges := make([]domain.Surcharge, 0, 3)

	hour := at.Hour()
	if hour >= s.cfg.NightStartHour || hour < s.cfg.NightEndHour {
		surcharges = append(surcharges, domain.Surcharge{
			Name:   domain.SurchargeNight,
			Type:   "time",
			Amount: s.cfg.NightSurcharge,
		})
	}

	if at.Weekday() == time.Sunday {
		surcharges = append(surcharges, domain.Surcharge{
			Name:   domain.SurchargeSunday,
			Type:   "day",
			Amount: s.cfg.SundaySurcharge,
		})
	}

	if category == domain.CategorySoloSilla && maxFloor > s.cfg.FloorThreshold {
		surcharges = append(surcharges, domain.Surcharge{
			Name:   domain.SurchargeFloor,
			Type:   "floor",
			Amount: float64(maxFloor-s.cfg.FloorThreshold) * s.cfg.FloorSurchargePerStep,
		})
	}

	return surcharges
}

func (s *Service) breakdown(base float64, surcharges []domain.Surcharge) domain.PricingBreakdown {
	var total float64
	for _, sc := range surcharges {
		total += sc.Amount
	}
	return domain.PricingBreakdown{
		BasePrice:      base,
		Surcharges:     surcharges,
		TotalSurcharge: total,
		TotalPrice:     base + total,
	}
}

func matchesAddress(zoneName, address string) bool {
	if zoneName == "" || address == "" {
		return false
	}
	return strings.Contains(strings.ToLower(address), strings.ToLower(zoneName))
}
