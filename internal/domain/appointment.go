package domain

import (
	"encoding/json"
	"time"
)

// AppointmentStatus lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// OpenStatuses statuses that still occupy the schedule.
// The overdue sweep only touches appointments in these states.
var OpenStatuses = []AppointmentStatus{
	StatusPending,
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
}

// TerminalStatuses statuses that never block a time window
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// Appointment a scheduled trip for a customer, optionally assigned to a
// staff member and a vehicle/resource
type Appointment struct {
	ID                 int64
	CustomerID         int64
	StaffID            *int64
	ResourceID         *int64
	ServiceID          *int64
	EquipmentType      EquipmentType
	ScheduledAt        time.Time
	EstimatedDuration  int // minutes
	Status             AppointmentStatus
	TotalAmount        float64
	OriginAddress      string
	DestinationAddress string
	PricingSnapshot    json.RawMessage // frozen quote breakdown at booking time
	Notes              *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether the appointment reached a final state
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled || a.Status == StatusNoShow
}

// BlocksSchedule reports whether the appointment still occupies its window
func (a *Appointment) BlocksSchedule() bool {
	return !a.IsTerminal()
}

// CanBeCancelled reports whether the appointment may transition to cancelled
func (a *Appointment) CanBeCancelled() bool {
	return !a.IsTerminal()
}

// EndsAt returns the estimated end of the appointment window
func (a *Appointment) EndsAt() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.EstimatedDuration) * time.Minute)
}

// CanTransitionTo validates a lifecycle transition:
// pending/scheduled -> confirmed -> in_progress -> completed,
// and any non-terminal state -> cancelled or no_show.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.IsTerminal() {
		return false
	}
	if next == StatusCancelled || next == StatusNoShow {
		return true
	}
	switch a.Status {
	case StatusPending, StatusScheduled:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}

// ParseAppointmentStatus validates a raw status value
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return AppointmentStatus(s), true
	}
	return "", false
}

// AppointmentsFilter filter for appointment range queries
type AppointmentsFilter struct {
	From            *time.Time         // window start on scheduled_at (inclusive)
	To              *time.Time         // window end on scheduled_at (exclusive)
	CustomerID      *int64             // filter by customer
	StaffID         *int64             // filter by assigned staff member
	ResourceID      *int64             // filter by assigned resource
	ServiceID       *int64             // filter by service
	Status          *AppointmentStatus // filter by exact status
	ExcludeID       *int64             // exclude one appointment (edit flows)
	ExcludeStatuses []AppointmentStatus
	IncludeInactive bool // include terminal appointments
}
