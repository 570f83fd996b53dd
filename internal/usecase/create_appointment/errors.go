package create_appointment

import "errors"

var (
	// ErrTimeSlotConflict returned when the staff member or resource is
	// already booked around the requested window
	ErrTimeSlotConflict = errors.New("create_appointment: time slot conflict")

	// ErrServiceNotFound returned when the service is missing or inactive
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrDistanceUnavailable returned when the trip distance could not be resolved
	ErrDistanceUnavailable = errors.New("create_appointment: distance unavailable")

	// ErrInvalidDate returned when the appointment is scheduled in the past
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidInput returned on invalid input data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal returned on internal usecase errors
	ErrInternal = errors.New("create_appointment: internal error")
)
