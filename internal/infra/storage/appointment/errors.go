package appointment

import "errors"

var (
	// ErrAppointmentNotFound returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery returned when the SQL query could not be built
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery returned when the SQL query could not be executed
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow returned when a result row could not be scanned
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
