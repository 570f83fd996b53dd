package tariff

import "errors"

var (
	// ErrRuleNotFound returned when the tariff rule does not exist
	ErrRuleNotFound = errors.New("tariff.repository: tariff rule not found")

	// ErrBuildQuery returned when the SQL query could not be built
	ErrBuildQuery = errors.New("tariff.repository: failed to build query")

	// ErrExecQuery returned when the SQL query could not be executed
	ErrExecQuery = errors.New("tariff.repository: failed to execute query")

	// ErrScanRow returned when a result row could not be scanned
	ErrScanRow = errors.New("tariff.repository: failed to scan row")
)
