package pricing

import "errors"

var (
	// ErrServiceNotFound returned when the requested catalog service is
	// missing or inactive
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput returned on invalid quote input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal engine errors
	ErrInternal = errors.New("pricing: internal error")
)
