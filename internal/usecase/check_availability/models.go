package check_availability

import "time"

// Request a window to check for one staff member and/or one resource
type Request struct {
	StaffID              *int64    `json:"staffId,omitempty"`
	ResourceID           *int64    `json:"resourceId,omitempty"`
	Start                time.Time `json:"start"`
	End                  time.Time `json:"end"`
	ExcludeAppointmentID *int64    `json:"excludeAppointmentId,omitempty"` // edit flows
}

// PartyVerdict availability of one staff member or resource
type PartyVerdict struct {
	Available        bool       `json:"available"`
	ConflictingID    *int64     `json:"conflictingAppointmentId,omitempty"`
	ConflictingStart *time.Time `json:"conflictingStart,omitempty"`
}

// Response per-party verdicts plus the combined answer
type Response struct {
	Available bool          `json:"available"`
	Staff     *PartyVerdict `json:"staff,omitempty"`
	Resource  *PartyVerdict `json:"resource,omitempty"`
}
