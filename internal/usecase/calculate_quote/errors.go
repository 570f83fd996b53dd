package calculate_quote

import "errors"

var (
	// ErrDistanceUnavailable returned when no distance was supplied and the
	// route could not be estimated. Quotes never fall back to zero distance.
	ErrDistanceUnavailable = errors.New("calculate_quote: distance unavailable")

	// ErrServiceNotFound returned when the requested service is missing or inactive
	ErrServiceNotFound = errors.New("calculate_quote: service not found")

	// ErrInvalidInput returned on invalid input data
	ErrInvalidInput = errors.New("calculate_quote: invalid input data")

	// ErrInternal returned on internal usecase errors
	ErrInternal = errors.New("calculate_quote: internal error")
)
