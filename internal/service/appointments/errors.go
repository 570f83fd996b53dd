package appointments

import "errors"

var (
	// ErrAppointmentNotFound returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel returned when the appointment already reached a
	// terminal state
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidStatus returned on an unknown status value
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition returned when the lifecycle forbids the move
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput returned on invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
