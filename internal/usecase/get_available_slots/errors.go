package get_available_slots

import "errors"

var (
	// ErrServiceNotFound returned when the service is missing or inactive
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput returned on invalid input data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal returned on internal usecase errors
	ErrInternal = errors.New("get_available_slots: internal error")
)
