package domain

import "time"

// Service catalog entry offered by the dispatch business
type Service struct {
	ID              int64
	Name            string
	Category        ServiceCategory
	BasePrice       float64
	MinDistanceKm   *float64 // nil = unbounded below
	MaxDistanceKm   *float64 // nil = unbounded above
	DurationMinutes int
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CoversDistance reports whether the service applies to a trip of d km.
// A nil bound is unbounded on that side.
func (s *Service) CoversDistance(d float64) bool {
	if s.MinDistanceKm != nil && d < *s.MinDistanceKm {
		return false
	}
	if s.MaxDistanceKm != nil && d > *s.MaxDistanceKm {
		return false
	}
	return true
}
