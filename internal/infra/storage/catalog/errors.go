package catalog

import "errors"

var (
	// ErrServiceNotFound returned when the service does not exist
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrBuildQuery returned when the SQL query could not be built
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery returned when the SQL query could not be executed
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow returned when a result row could not be scanned
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
