package get_available_slots

import (
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/pkg/types"
)

// Request open slots for one service on one date, optionally narrowed to
// one staff member or resource
type Request struct {
	ServiceID  int64
	Date       time.Time // date only
	StaffID    *int64
	ResourceID *int64
}

// Slot one free window
type Slot struct {
	Start           types.TimeString `json:"start"`
	End             types.TimeString `json:"end"`
	DurationMinutes int              `json:"durationMinutes"`
}

// Response ascending list of open slots
type Response struct {
	ServiceID int64     `json:"serviceId"`
	Date      time.Time `json:"date"`
	Slots     []Slot    `json:"slots"`
}

func fromDomainSlots(serviceID int64, date time.Time, slots []domain.OpenSlot) *Response {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{
			Start:           s.Start,
			End:             s.End,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &Response{ServiceID: serviceID, Date: date, Slots: out}
}
