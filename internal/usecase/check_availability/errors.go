package check_availability

import "errors"

var (
	// ErrInvalidInput returned on invalid input data
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal returned on internal usecase errors
	ErrInternal = errors.New("check_availability: internal error")
)
