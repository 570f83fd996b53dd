package geodistance

import "errors"

var (
	// ErrAddressNotFound returned when geocoding yields no results for an address
	ErrAddressNotFound = errors.New("geodistance client: address not found")

	// ErrRouteUnavailable returned when no driving route could be computed
	// between the two addresses. Callers fall back to manual distance entry.
	ErrRouteUnavailable = errors.New("geodistance client: route unavailable")

	// ErrInternal returned on internal client errors
	ErrInternal = errors.New("geodistance client: internal error")
)
