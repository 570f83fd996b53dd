package domain

import "github.com/vialibre/dispatch-service/pkg/types"

// OpenSlot a free time slot for a service on a given date
type OpenSlot struct {
	Start           types.TimeString
	End             types.TimeString
	DurationMinutes int
}
