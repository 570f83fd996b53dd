package customer

import "errors"

var (
	// ErrCustomerNotFound returned when the customer does not exist
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrBuildQuery returned when the SQL query could not be built
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrExecQuery returned when the SQL query could not be executed
	ErrExecQuery = errors.New("customer.repository: failed to execute query")

	// ErrScanRow returned when a result row could not be scanned
	ErrScanRow = errors.New("customer.repository: failed to scan row")
)
