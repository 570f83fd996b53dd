package resource

import "errors"

var (
	// ErrResourceNotFound returned when the resource does not exist
	ErrResourceNotFound = errors.New("resource.repository: resource not found")

	// ErrBuildQuery returned when the SQL query could not be built
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery returned when the SQL query could not be executed
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow returned when a result row could not be scanned
	ErrScanRow = errors.New("resource.repository: failed to scan row")
)
