package calculate_quote

import (
	"fmt"

	"github.com/vialibre/dispatch-service/internal/domain"
)

// validateRequest validates the quote request and maps raw enum values
func validateRequest(req *Request) (domain.TripType, domain.EquipmentType, error) {
	if req.OriginAddress == "" || req.DestinationAddress == "" {
		return "", "", fmt.Errorf("%w: originAddress and destinationAddress are required", ErrInvalidInput)
	}
	if req.DistanceKm != nil && *req.DistanceKm <= 0 {
		return "", "", fmt.Errorf("%w: distanceKm must be positive", ErrInvalidInput)
	}
	if req.FloorOrigin < 0 || req.FloorDestination < 0 {
		return "", "", fmt.Errorf("%w: floors must not be negative", ErrInvalidInput)
	}
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return "", "", fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	tripType, ok := parseTripType(req.TripType)
	if !ok {
		return "", "", fmt.Errorf("%w: unknown trip type %q", ErrInvalidInput, req.TripType)
	}

	equipmentType := domain.EquipmentNinguno
	if req.EquipmentType != "" {
		equipmentType, ok = parseEquipmentType(req.EquipmentType)
		if !ok {
			return "", "", fmt.Errorf("%w: unknown equipment type %q", ErrInvalidInput, req.EquipmentType)
		}
	}

	return tripType, equipmentType, nil
}

func parseTripType(s string) (domain.TripType, bool) {
	switch domain.TripType(s) {
	case domain.TripSencillo, domain.TripDoble:
		return domain.TripType(s), true
	}
	return "", false
}

func parseEquipmentType(s string) (domain.EquipmentType, bool) {
	switch domain.EquipmentType(s) {
	case domain.EquipmentRampa, domain.EquipmentRoboticaPlegable,
		domain.EquipmentSillaRuedas, domain.EquipmentNinguno:
		return domain.EquipmentType(s), true
	}
	return "", false
}
