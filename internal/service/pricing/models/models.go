package models

import (
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
)

// QuoteInput a trip with its distance already resolved.
// DistanceKm must be positive; distance resolution happens upstream.
type QuoteInput struct {
	OriginAddress      string
	DestinationAddress string
	DistanceKm         float64
	DurationMinutes    int
	TripType           domain.TripType
	EquipmentType      domain.EquipmentType
	ScheduledAt        time.Time
	FloorOrigin        int
	FloorDestination   int
	ServiceID          *int64
}

// MaxFloor the higher of the two trip endpoints
func (in *QuoteInput) MaxFloor() int {
	if in.FloorOrigin > in.FloorDestination {
		return in.FloorOrigin
	}
	return in.FloorDestination
}
