package geodistance

// RouteEstimate driving estimate between two addresses
type RouteEstimate struct {
	DistanceKm      float64
	DurationMinutes int
}
