package calculate_quote

import (
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
)

// Request a trip to price
type Request struct {
	OriginAddress      string    `json:"originAddress"`
	DestinationAddress string    `json:"destinationAddress"`
	DistanceKm         *float64  `json:"distanceKm,omitempty"` // skip route estimation when given
	TripType           string    `json:"tripType"`
	EquipmentType      string    `json:"equipmentType,omitempty"`
	ScheduledAt        time.Time `json:"scheduledAt"`
	FloorOrigin        int       `json:"floorOrigin,omitempty"`
	FloorDestination   int       `json:"floorDestination,omitempty"`
	ServiceID          *int64    `json:"serviceId,omitempty"`
}

// Response the priced quote
type Response struct {
	Quote *domain.Quote `json:"quote"`
}
