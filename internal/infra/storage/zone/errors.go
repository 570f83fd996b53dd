package zone

import "errors"

var (
	// ErrZoneNotFound returned when the zone does not exist
	ErrZoneNotFound = errors.New("zone.repository: zone not found")

	// ErrSlugTaken returned when another zone already uses the slug
	ErrSlugTaken = errors.New("zone.repository: slug already in use")

	// ErrBuildQuery returned when the SQL query could not be built
	ErrBuildQuery = errors.New("zone.repository: failed to build query")

	// ErrExecQuery returned when the SQL query could not be executed
	ErrExecQuery = errors.New("zone.repository: failed to execute query")

	// ErrScanRow returned when a result row could not be scanned
	ErrScanRow = errors.New("zone.repository: failed to scan row")
)
