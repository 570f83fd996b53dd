package directory

import "errors"

var (
	// ErrCustomerNotFound returned when the customer does not exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrStaffNotFound returned when the staff member does not exist
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrResourceNotFound returned when the resource does not exist
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidInput returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
