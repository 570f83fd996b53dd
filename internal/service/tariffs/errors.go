package tariffs

import "errors"

var (
	// ErrZoneNotFound returned when the zone does not exist
	ErrZoneNotFound = errors.New("zone not found")

	// ErrRateNotFound returned when the rate does not exist
	ErrRateNotFound = errors.New("rate not found")

	// ErrRuleNotFound returned when the tariff rule does not exist
	ErrRuleNotFound = errors.New("tariff rule not found")

	// ErrSlugTaken returned when another zone already uses the slug
	ErrSlugTaken = errors.New("zone slug already taken")

	// ErrInvalidInput returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
