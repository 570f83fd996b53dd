package calculate_quote

import (
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
	calculateQuote "github.com/vialibre/dispatch-service/internal/usecase/calculate_quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	OriginAddress      string   `json:"originAddress"`
	DestinationAddress string   `json:"destinationAddress"`
	DistanceKm         *float64 `json:"distanceKm,omitempty"`
	TripType           string   `json:"tripType"`
	EquipmentType      string   `json:"equipmentType,omitempty"`
	ScheduledAt        string   `json:"scheduledAt,omitempty"` // RFC 3339
	FloorOrigin        int      `json:"floorOrigin,omitempty"`
	FloorDestination   int      `json:"floorDestination,omitempty"`
	ServiceID          *int64   `json:"serviceId,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model
func (r *QuoteRequest) ToUseCaseRequest() (*calculateQuote.Request, error) {
	var scheduledAt time.Time
	if r.ScheduledAt != "" {
		parsed, err := time.Parse(time.RFC3339, r.ScheduledAt)
		if err != nil {
			return nil, err
		}
		scheduledAt = parsed
	}

	return &calculateQuote.Request{
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		DistanceKm:         r.DistanceKm,
		TripType:           r.TripType,
		EquipmentType:      r.EquipmentType,
		ScheduledAt:        scheduledAt,
		FloorOrigin:        r.FloorOrigin,
		FloorDestination:   r.FloorDestination,
		ServiceID:          r.ServiceID,
	}, nil
}

// QuoteResponse HTTP response model, the quote as computed
type QuoteResponse struct {
	Quote *domain.Quote `json:"quote"`
}

// FromUseCaseResponse converts the usecase response into the HTTP model
func FromUseCaseResponse(resp *calculateQuote.Response) *QuoteResponse {
	return &QuoteResponse{Quote: resp.Quote}
}
