package staff

import "errors"

var (
	// ErrStaffNotFound returned when the staff member does not exist
	ErrStaffNotFound = errors.New("staff.repository: staff member not found")

	// ErrBuildQuery returned when the SQL query could not be built
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery returned when the SQL query could not be executed
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow returned when a result row could not be scanned
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)
