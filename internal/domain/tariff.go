package domain

import "time"

// Rate one priced zone combination: trip type + equipment + origin bucket,
// bounded either by a distance range or by a named destination
type Rate struct {
	ID              int64
	ZoneID          int64
	TripType        TripType
	EquipmentType   EquipmentType
	OriginType      *OriginType // nil = any origin bucket
	MinKm           *float64
	MaxKm           *float64
	DestinationName *string
	Price           float64 // >= 0

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CoversDistance reports whether the rate's distance range contains d.
// A nil bound is unbounded on that side; a rate keyed by destination name
// has no distance range and matches any distance.
func (r *Rate) CoversDistance(d float64) bool {
	if r.MinKm != nil && d < *r.MinKm {
		return false
	}
	if r.MaxKm != nil && d > *r.MaxKm {
		return false
	}
	return true
}

// TariffRule priced rule tying a service (and optionally a zone) to a
// pricing mode. A rule with nil ZoneID is the general fallback.
type TariffRule struct {
	ID          int64
	ZoneID      *int64
	ZoneName    *string // denormalized for address matching
	ServiceID   *int64  // nil = applies to any service
	PricingMode PricingMode
	FixedPrice  *float64
	PricePerKm  *float64
	MinPrice    *float64
	IsActive    bool
	Tiers       []DistanceTier

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGeneral reports whether the rule is the zone-less fallback
func (r *TariffRule) IsGeneral() bool {
	return r.ZoneID == nil
}

// AppliesToService reports whether the rule covers the given service.
// Rules without a service bind to every service.
func (r *TariffRule) AppliesToService(serviceID *int64) bool {
	if r.ServiceID == nil {
		return true
	}
	return serviceID != nil && *r.ServiceID == *serviceID
}

// TierFor selects the distance tier covering d: minKm <= d and
// (maxKm is nil or d <= maxKm). Returns nil when no tier covers d.
func (r *TariffRule) TierFor(d float64) *DistanceTier {
	for i := range r.Tiers {
		t := &r.Tiers[i]
		if d < t.MinKm {
			continue
		}
		if t.MaxKm != nil && d > *t.MaxKm {
			continue
		}
		return t
	}
	return nil
}

// DistanceTier a [minKm, maxKm] priced bracket under BY_DISTANCE_TIER mode
type DistanceTier struct {
	ID    int64
	MinKm float64
	MaxKm *float64 // nil = unbounded
	Price float64
}
