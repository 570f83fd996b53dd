package rate

import "errors"

var (
	// ErrRateNotFound returned when the rate does not exist
	ErrRateNotFound = errors.New("rate.repository: rate not found")

	// ErrBuildQuery returned when the SQL query could not be built
	ErrBuildQuery = errors.New("rate.repository: failed to build query")

	// ErrExecQuery returned when the SQL query could not be executed
	ErrExecQuery = errors.New("rate.repository: failed to execute query")

	// ErrScanRow returned when a result row could not be scanned
	ErrScanRow = errors.New("rate.repository: failed to scan row")
)
