package catalog

import "errors"

var (
	// ErrServiceNotFound returned when the service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
