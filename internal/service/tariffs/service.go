package tariffs

import (
	"context"
	"errors"
	"fmt"

	"github.com/vialibre/dispatch-service/internal/domain"
	rateRepo "github.com/vialibre/dispatch-service/internal/infra/storage/rate"
	tariffRepo "github.com/vialibre/dispatch-service/internal/infra/storage/tariff"
	zoneRepo "github.com/vialibre/dispatch-service/internal/infra/storage/zone"
	"github.com/vialibre/dispatch-service/internal/service/tariffs/models"
)

// Service admin CRUD over zones, zone rates and tariff rules, plus the
// rate table lookup the legacy tariff pages exposed to operators
type Service struct {
	zoneRepo   ZoneRepository
	rateRepo   RateRepository
	tariffRepo TariffRuleRepository
	logger     Logger
}

// NewService creates a new tariffs service
func NewService(zoneRepo ZoneRepository, rateRepo RateRepository, tariffRepo TariffRuleRepository, logger Logger) *Service {
	return &Service{
		zoneRepo:   zoneRepo,
		rateRepo:   rateRepo,
		tariffRepo: tariffRepo,
		logger:     logger,
	}
}

// Zones

// CreateZone creates a zone. Slugs are unique across zones.
func (s *Service) CreateZone(ctx context.Context, req *models.ZoneRequest) (*models.ZoneResponse, error) {
	if req.Name == "" || req.Slug == "" {
		return nil, fmt.Errorf("%w: name and slug are required", ErrInvalidInput)
	}

	zone, err := s.zoneRepo.Create(ctx, req.ToDomain(0))
	if err != nil {
		if errors.Is(err, zoneRepo.ErrSlugTaken) {
			s.logger.Warn("CreateZone: slug=%q already taken", req.Slug)
			return nil, ErrSlugTaken
		}
		s.logger.Error("CreateZone: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateZone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateZone: zone id=%d slug=%q created", zone.ID, zone.Slug)
	return models.FromDomainZone(zone), nil
}

// GetZone fetches one zone
func (s *Service) GetZone(ctx context.Context, id int64) (*models.ZoneResponse, error) {
	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, zoneRepo.ErrZoneNotFound) {
			return nil, ErrZoneNotFound
		}
		s.logger.Error("GetZone: repository error for zone id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetZone - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainZone(zone), nil
}

// ListZones fetches all zones
func (s *Service) ListZones(ctx context.Context) (*models.ZoneListResponse, error) {
	zones, err := s.zoneRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListZones: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListZones - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainZoneList(zones), nil
}

// UpdateZone rewrites a zone
func (s *Service) UpdateZone(ctx context.Context, id int64, req *models.ZoneRequest) (*models.ZoneResponse, error) {
	if req.Name == "" || req.Slug == "" {
		return nil, fmt.Errorf("%w: name and slug are required", ErrInvalidInput)
	}

	if err := s.zoneRepo.Update(ctx, req.ToDomain(id)); err != nil {
		switch {
		case errors.Is(err, zoneRepo.ErrZoneNotFound):
			return nil, ErrZoneNotFound
		case errors.Is(err, zoneRepo.ErrSlugTaken):
			s.logger.Warn("UpdateZone: slug=%q already taken", req.Slug)
			return nil, ErrSlugTaken
		}
		s.logger.Error("UpdateZone: repository error for zone id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateZone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateZone: zone id=%d updated", id)
	return s.GetZone(ctx, id)
}

// DeleteZone removes a zone. Its rates cascade.
func (s *Service) DeleteZone(ctx context.Context, id int64) error {
	if err := s.zoneRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, zoneRepo.ErrZoneNotFound) {
			return ErrZoneNotFound
		}
		s.logger.Error("DeleteZone: repository error for zone id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteZone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteZone: zone id=%d deleted", id)
	return nil
}

// Rates

// CreateRate creates a rate under a zone
func (s *Service) CreateRate(ctx context.Context, zoneID int64, req *models.RateRequest) (*models.RateResponse, error) {
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if _, err := s.zoneRepo.GetByID(ctx, zoneID); err != nil {
		if errors.Is(err, zoneRepo.ErrZoneNotFound) {
			return nil, ErrZoneNotFound
		}
		s.logger.Error("CreateRate: zone lookup error for zone id=%d: %v", zoneID, err)
		return nil, fmt.Errorf("%w: CreateRate - zone lookup error: %v", ErrInternal, err)
	}

	rate, err := req.ToDomain(0, zoneID)
	if err != nil {
		s.logger.Warn("CreateRate: invalid payload for zone id=%d: %v", zoneID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.rateRepo.Create(ctx, rate)
	if err != nil {
		s.logger.Error("CreateRate: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRate: rate id=%d created for zone id=%d", created.ID, zoneID)
	return models.FromDomainRate(created), nil
}

// GetRate fetches one rate
func (s *Service) GetRate(ctx context.Context, id int64) (*models.RateResponse, error) {
	rate, err := s.rateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rateRepo.ErrRateNotFound) {
			return nil, ErrRateNotFound
		}
		s.logger.Error("GetRate: repository error for rate id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRate - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRate(rate), nil
}

// ListRates fetches the rates of a zone
func (s *Service) ListRates(ctx context.Context, zoneID int64) (*models.RateListResponse, error) {
	if _, err := s.zoneRepo.GetByID(ctx, zoneID); err != nil {
		if errors.Is(err, zoneRepo.ErrZoneNotFound) {
			return nil, ErrZoneNotFound
		}
		s.logger.Error("ListRates: zone lookup error for zone id=%d: %v", zoneID, err)
		return nil, fmt.Errorf("%w: ListRates - zone lookup error: %v", ErrInternal, err)
	}

	rates, err := s.rateRepo.ListByZone(ctx, zoneID)
	if err != nil {
		s.logger.Error("ListRates: repository error for zone id=%d: %v", zoneID, err)
		return nil, fmt.Errorf("%w: ListRates - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRateList(rates), nil
}

// UpdateRate rewrites a rate
func (s *Service) UpdateRate(ctx context.Context, id, zoneID int64, req *models.RateRequest) (*models.RateResponse, error) {
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	rate, err := req.ToDomain(id, zoneID)
	if err != nil {
		s.logger.Warn("UpdateRate: invalid payload for rate id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.rateRepo.Update(ctx, rate); err != nil {
		if errors.Is(err, rateRepo.ErrRateNotFound) {
			return nil, ErrRateNotFound
		}
		s.logger.Error("UpdateRate: repository error for rate id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRate: rate id=%d updated", id)
	return s.GetRate(ctx, id)
}

// DeleteRate removes a rate
func (s *Service) DeleteRate(ctx context.Context, id int64) error {
	if err := s.rateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, rateRepo.ErrRateNotFound) {
			return ErrRateNotFound
		}
		s.logger.Error("DeleteRate: repository error for rate id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteRate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRate: rate id=%d deleted", id)
	return nil
}

// LookupRates resolves rates from the rate table for a trip combination.
// Distance filtering happens here since destination-keyed rates carry no
// distance range at all.
func (s *Service) LookupRates(ctx context.Context, req *models.RateLookupRequest) (*models.RateListResponse, error) {
	tripType, err := models.ToDomainTripType(req.TripType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	equipmentType, err := models.ToDomainEquipmentType(req.EquipmentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	filter := rateRepo.LookupFilter{
		ZoneID:        req.ZoneID,
		TripType:      tripType,
		EquipmentType: equipmentType,
		DistanceKm:    req.DistanceKm,
	}
	if req.OriginType != nil {
		originType, err := models.ToDomainOriginType(*req.OriginType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.OriginType = &originType
	}

	rates, err := s.rateRepo.Lookup(ctx, filter)
	if err != nil {
		s.logger.Error("LookupRates: repository error: %v", err)
		return nil, fmt.Errorf("%w: LookupRates - repository error: %v", ErrInternal, err)
	}

	if req.DistanceKm != nil {
		filtered := make([]*domain.Rate, 0, len(rates))
		for _, rate := range rates {
			if rate.CoversDistance(*req.DistanceKm) {
				filtered = append(filtered, rate)
			}
		}
		rates = filtered
	}

	s.logger.Info("LookupRates: zone id=%d matched %d rates", req.ZoneID, len(rates))
	return models.FromDomainRateList(rates), nil
}

// Tariff rules

// CreateRule creates a tariff rule with its distance tiers
func (s *Service) CreateRule(ctx context.Context, req *models.TariffRuleRequest) (*models.TariffRuleResponse, error) {
	rule, err := req.ToDomain(0)
	if err != nil {
		s.logger.Warn("CreateRule: invalid payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	created, err := s.tariffRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("CreateRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRule: tariff rule id=%d created", created.ID)
	return s.GetRule(ctx, created.ID)
}

// GetRule fetches one tariff rule with its tiers
func (s *Service) GetRule(ctx context.Context, id int64) (*models.TariffRuleResponse, error) {
	rule, err := s.tariffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tariffRepo.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		s.logger.Error("GetRule: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRule - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTariffRule(rule), nil
}

// ListRules fetches tariff rules, optionally only active ones
func (s *Service) ListRules(ctx context.Context, onlyActive bool) (*models.TariffRuleListResponse, error) {
	rules, err := s.tariffRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTariffRuleList(rules), nil
}

// UpdateRule rewrites a tariff rule and replaces its tiers
func (s *Service) UpdateRule(ctx context.Context, id int64, req *models.TariffRuleRequest) (*models.TariffRuleResponse, error) {
	rule, err := req.ToDomain(id)
	if err != nil {
		s.logger.Warn("UpdateRule: invalid payload for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	if err := s.tariffRepo.Update(ctx, rule); err != nil {
		if errors.Is(err, tariffRepo.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		s.logger.Error("UpdateRule: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRule: tariff rule id=%d updated", id)
	return s.GetRule(ctx, id)
}

// DeleteRule removes a tariff rule with its tiers
func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	if err := s.tariffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tariffRepo.ErrRuleNotFound) {
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRule: tariff rule id=%d deleted", id)
	return nil
}

// validateRule checks that the rule carries the fields its mode prices by
func validateRule(rule *domain.TariffRule) error {
	switch rule.PricingMode {
	case domain.ModeFixed:
		if rule.FixedPrice == nil {
			return fmt.Errorf("%w: fixedPrice is required for FIXED rules", ErrInvalidInput)
		}
	case domain.ModePerKm:
		if rule.PricePerKm == nil {
			return fmt.Errorf("%w: pricePerKm is required for PER_KM rules", ErrInvalidInput)
		}
	case domain.ModeByDistanceTier:
		if len(rule.Tiers) == 0 {
			return fmt.Errorf("%w: at least one tier is required for BY_DISTANCE_TIER rules", ErrInvalidInput)
		}
	}
	return nil
}
