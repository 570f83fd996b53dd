package models

import (
	"errors"
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
)

var (
	// ErrInvalidTripType returned on an unknown trip type
	ErrInvalidTripType = errors.New("invalid trip type")

	// ErrInvalidEquipmentType returned on an unknown equipment type
	ErrInvalidEquipmentType = errors.New("invalid equipment type")

	// ErrInvalidOriginType returned on an unknown origin type
	ErrInvalidOriginType = errors.New("invalid origin type")

	// ErrInvalidPricingMode returned on an unknown pricing mode
	ErrInvalidPricingMode = errors.New("invalid pricing mode")
)

// Request models

// ZoneRequest create/update payload for a zone
type ZoneRequest struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	IsMetro bool   `json:"isMetro"`
}

// ToDomain converts the payload into a domain zone
func (r *ZoneRequest) ToDomain(id int64) *domain.Zone {
	return &domain.Zone{
		ID:      id,
		Name:    r.Name,
		Slug:    r.Slug,
		IsMetro: r.IsMetro,
	}
}

// RateRequest create/update payload for a zone rate
type RateRequest struct {
	TripType        string   `json:"tripType"`
	EquipmentType   string   `json:"equipmentType"`
	OriginType      *string  `json:"originType,omitempty"`
	MinKm           *float64 `json:"minKm,omitempty"`
	MaxKm           *float64 `json:"maxKm,omitempty"`
	DestinationName *string  `json:"destinationName,omitempty"`
	Price           float64  `json:"price"`
}

// ToDomain converts the payload into a domain rate
func (r *RateRequest) ToDomain(id, zoneID int64) (*domain.Rate, error) {
	tripType, err := ToDomainTripType(r.TripType)
	if err != nil {
		return nil, err
	}
	equipmentType, err := ToDomainEquipmentType(r.EquipmentType)
	if err != nil {
		return nil, err
	}

	rate := &domain.Rate{
		ID:              id,
		ZoneID:          zoneID,
		TripType:        tripType,
		EquipmentType:   equipmentType,
		MinKm:           r.MinKm,
		MaxKm:           r.MaxKm,
		DestinationName: r.DestinationName,
		Price:           r.Price,
	}

	if r.OriginType != nil {
		originType, err := ToDomainOriginType(*r.OriginType)
		if err != nil {
			return nil, err
		}
		rate.OriginType = &originType
	}

	return rate, nil
}

// DistanceTierRequest one priced distance bracket
type DistanceTierRequest struct {
	MinKm float64  `json:"minKm"`
	MaxKm *float64 `json:"maxKm,omitempty"`
	Price float64  `json:"price"`
}

// TariffRuleRequest create/update payload for a tariff rule with its tiers
type TariffRuleRequest struct {
	ZoneID      *int64                `json:"zoneId,omitempty"`
	ServiceID   *int64                `json:"serviceId,omitempty"`
	PricingMode string                `json:"pricingMode"`
	FixedPrice  *float64              `json:"fixedPrice,omitempty"`
	PricePerKm  *float64              `json:"pricePerKm,omitempty"`
	MinPrice    *float64              `json:"minPrice,omitempty"`
	IsActive    bool                  `json:"isActive"`
	Tiers       []DistanceTierRequest `json:"tiers,omitempty"`
}

// ToDomain converts the payload into a domain tariff rule
func (r *TariffRuleRequest) ToDomain(id int64) (*domain.TariffRule, error) {
	mode, err := ToDomainPricingMode(r.PricingMode)
	if err != nil {
		return nil, err
	}

	tiers := make([]domain.DistanceTier, 0, len(r.Tiers))
	for _, t := range r.Tiers {
		tiers = append(tiers, domain.DistanceTier{
			MinKm: t.MinKm,
			MaxKm: t.MaxKm,
			Price: t.Price,
		})
	}

	return &domain.TariffRule{
		ID:          id,
		ZoneID:      r.ZoneID,
		ServiceID:   r.ServiceID,
		PricingMode: mode,
		FixedPrice:  r.FixedPrice,
		PricePerKm:  r.PricePerKm,
		MinPrice:    r.MinPrice,
		IsActive:    r.IsActive,
		Tiers:       tiers,
	}, nil
}

// RateLookupRequest criteria for resolving rates from the rate table
type RateLookupRequest struct {
	ZoneID        int64    `json:"zoneId"`
	TripType      string   `json:"tripType"`
	EquipmentType string   `json:"equipmentType"`
	OriginType    *string  `json:"originType,omitempty"`
	DistanceKm    *float64 `json:"distanceKm,omitempty"`
}

// Response models

// ZoneResponse API representation of a zone
type ZoneResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsMetro   bool      `json:"isMetro"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ZoneListResponse list wrapper
type ZoneListResponse struct {
	Zones []*ZoneResponse `json:"zones"`
	Total int             `json:"total"`
}

// RateResponse API representation of a zone rate
type RateResponse struct {
	ID              int64    `json:"id"`
	ZoneID          int64    `json:"zoneId"`
	TripType        string   `json:"tripType"`
	EquipmentType   string   `json:"equipmentType"`
	OriginType      *string  `json:"originType,omitempty"`
	MinKm           *float64 `json:"minKm,omitempty"`
	MaxKm           *float64 `json:"maxKm,omitempty"`
	DestinationName *string  `json:"destinationName,omitempty"`
	Price           float64  `json:"price"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// RateListResponse list wrapper
type RateListResponse struct {
	Rates []*RateResponse `json:"rates"`
	Total int             `json:"total"`
}

// DistanceTierResponse one priced distance bracket
type DistanceTierResponse struct {
	ID    int64    `json:"id"`
	MinKm float64  `json:"minKm"`
	MaxKm *float64 `json:"maxKm,omitempty"`
	Price float64  `json:"price"`
}

// TariffRuleResponse API representation of a tariff rule
type TariffRuleResponse struct {
	ID          int64                  `json:"id"`
	ZoneID      *int64                 `json:"zoneId,omitempty"`
	ZoneName    *string                `json:"zoneName,omitempty"`
	ServiceID   *int64                 `json:"serviceId,omitempty"`
	PricingMode string                 `json:"pricingMode"`
	FixedPrice  *float64               `json:"fixedPrice,omitempty"`
	PricePerKm  *float64               `json:"pricePerKm,omitempty"`
	MinPrice    *float64               `json:"minPrice,omitempty"`
	IsActive    bool                   `json:"isActive"`
	Tiers       []DistanceTierResponse `json:"tiers,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// TariffRuleListResponse list wrapper
type TariffRuleListResponse struct {
	Rules []*TariffRuleResponse `json:"rules"`
	Total int                   `json:"total"`
}

// Converters

// FromDomainZone converts a domain zone into the API model
func FromDomainZone(z *domain.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:        z.ID,
		Name:      z.Name,
		Slug:      z.Slug,
		IsMetro:   z.IsMetro,
		CreatedAt: z.CreatedAt,
		UpdatedAt: z.UpdatedAt,
	}
}

// FromDomainZoneList converts a domain zone slice
func FromDomainZoneList(zones []*domain.Zone) *ZoneListResponse {
	out := make([]*ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, FromDomainZone(z))
	}
	return &ZoneListResponse{Zones: out, Total: len(out)}
}

// FromDomainRate converts a domain rate into the API model
func FromDomainRate(r *domain.Rate) *RateResponse {
	resp := &RateResponse{
		ID:              r.ID,
		ZoneID:          r.ZoneID,
		TripType:        string(r.TripType),
		EquipmentType:   string(r.EquipmentType),
		MinKm:           r.MinKm,
		MaxKm:           r.MaxKm,
		DestinationName: r.DestinationName,
		Price:           r.Price,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.OriginType != nil {
		origin := string(*r.OriginType)
		resp.OriginType = &origin
	}
	return resp
}

// FromDomainRateList converts a domain rate slice
func FromDomainRateList(rates []*domain.Rate) *RateListResponse {
	out := make([]*RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, FromDomainRate(r))
	}
	return &RateListResponse{Rates: out, Total: len(out)}
}

// FromDomainTariffRule converts a domain tariff rule into the API model
func FromDomainTariffRule(r *domain.TariffRule) *TariffRuleResponse {
	tiers := make([]DistanceTierResponse, 0, len(r.Tiers))
	for _, t := range r.Tiers {
		tiers = append(tiers, DistanceTierResponse{
			ID:    t.ID,
			MinKm: t.MinKm,
			MaxKm: t.MaxKm,
			Price: t.Price,
		})
	}
	return &TariffRuleResponse{
		ID:          r.ID,
		ZoneID:      r.ZoneID,
		ZoneName:    r.ZoneName,
		ServiceID:   r.ServiceID,
		PricingMode: string(r.PricingMode),
		FixedPrice:  r.FixedPrice,
		PricePerKm:  r.PricePerKm,
		MinPrice:    r.MinPrice,
		IsActive:    r.IsActive,
		Tiers:       tiers,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainTariffRuleList converts a domain tariff rule slice
func FromDomainTariffRuleList(rules []*domain.TariffRule) *TariffRuleListResponse {
	out := make([]*TariffRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, FromDomainTariffRule(r))
	}
	return &TariffRuleListResponse{Rules: out, Total: len(out)}
}

// ToDomainTripType validates a raw trip type value
func ToDomainTripType(s string) (domain.TripType, error) {
	switch domain.TripType(s) {
	case domain.TripSencillo, domain.TripDoble:
		return domain.TripType(s), nil
	}
	return "", ErrInvalidTripType
}

// ToDomainEquipmentType validates a raw equipment type value
func ToDomainEquipmentType(s string) (domain.EquipmentType, error) {
	switch domain.EquipmentType(s) {
	case domain.EquipmentRampa, domain.EquipmentRoboticaPlegable,
		domain.EquipmentSillaRuedas, domain.EquipmentNinguno:
		return domain.EquipmentType(s), nil
	}
	return "", ErrInvalidEquipmentType
}

// ToDomainOriginType validates a raw origin type value
func ToDomainOriginType(s string) (domain.OriginType, error) {
	switch domain.OriginType(s) {
	case domain.OriginMismoMunicipio, domain.OriginDesdeMedellin:
		return domain.OriginType(s), nil
	}
	return "", ErrInvalidOriginType
}

// ToDomainPricingMode validates a raw pricing mode value
func ToDomainPricingMode(s string) (domain.PricingMode, error) {
	switch domain.PricingMode(s) {
	case domain.ModeFixed, domain.ModePerKm, domain.ModeByDistanceTier:
		return domain.PricingMode(s), nil
	}
	return "", ErrInvalidPricingMode
}
