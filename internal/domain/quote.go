package domain

import "encoding/json"

// Surcharge kinds
const (
	SurchargeNight  = "NOCTURNO"
	SurchargeSunday = "DOMINGO"
	SurchargeFloor  = "PISOS"
)

// Surcharge one additive price adjustment applied to a quote
type Surcharge struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"` // time | day | floor
	Amount float64 `json:"amount"`
}

// PricingBreakdown base price plus applied surcharges
type PricingBreakdown struct {
	BasePrice      float64     `json:"basePrice"`
	Surcharges     []Surcharge `json:"surcharges"`
	TotalSurcharge float64     `json:"totalSurcharge"`
	TotalPrice     float64     `json:"totalPrice"`
}

// ServiceOption one service from the catalog priced for the requested trip
type ServiceOption struct {
	ServiceID       int64           `json:"serviceId"`
	ServiceName     string          `json:"serviceName"`
	Category        ServiceCategory `json:"category"`
	DurationMinutes int             `json:"durationMinutes"`
	Pricing         PricingBreakdown `json:"pricing"`
}

// Quote output of the pricing engine. Frozen as-is into an appointment's
// pricing snapshot when a booking is created.
type Quote struct {
	DistanceKm      float64          `json:"distanceKm"`
	DurationMinutes int              `json:"durationMinutes"`
	TripType        TripType         `json:"tripType"`
	EquipmentType   EquipmentType    `json:"equipmentType,omitempty"`
	ZoneID          *int64           `json:"zoneId,omitempty"`     // zone of the matched rule
	TariffRuleID    *int64           `json:"tariffRuleId,omitempty"`
	Pricing         PricingBreakdown `json:"pricing"`
	Options         []ServiceOption  `json:"options,omitempty"`
	Recommended     *ServiceOption   `json:"recommendedService,omitempty"`
}

// Snapshot serializes the quote for persistence in pricing_snapshot
func (q *Quote) Snapshot() (json.RawMessage, error) {
	return json.Marshal(q)
}

// QuoteFromSnapshot re-parses a persisted pricing snapshot
func QuoteFromSnapshot(raw json.RawMessage) (*Quote, error) {
	var q Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, err
	}
	return &q, nil
}
