package domain

import (
	"strings"
	"time"
)

// Zone geographic/administrative region used to scope tariffs
type Zone struct {
	ID      int64
	Name    string
	Slug    string // unique
	IsMetro bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MatchesAddress reports whether the zone covers the given free-text address.
// Matching is a case-insensitive substring search of the zone name inside the
// address, kept for parity with the legacy tariff pages. A zone named
// "Envigado" matches any address containing that word.
func (z *Zone) MatchesAddress(address string) bool {
	if z.Name == "" || address == "" {
		return false
	}
	return strings.Contains(strings.ToLower(address), strings.ToLower(z.Name))
}
