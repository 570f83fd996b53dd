package create_appointment

import (
	"time"

	apptModels "github.com/vialibre/dispatch-service/internal/service/appointments/models"
)

// Request a new appointment to book
type Request struct {
	CustomerID         int64     `json:"customerId"`
	StaffID            *int64    `json:"staffId,omitempty"`
	ResourceID         *int64    `json:"resourceId,omitempty"`
	ServiceID          *int64    `json:"serviceId,omitempty"`
	TripType           string    `json:"tripType"`
	EquipmentType      string    `json:"equipmentType,omitempty"`
	ScheduledAt        time.Time `json:"scheduledAt"`
	DurationMinutes    int       `json:"durationMinutes,omitempty"` // defaults to the service duration
	OriginAddress      string    `json:"originAddress"`
	DestinationAddress string    `json:"destinationAddress"`
	DistanceKm         *float64  `json:"distanceKm,omitempty"`
	FloorOrigin        int       `json:"floorOrigin,omitempty"`
	FloorDestination   int       `json:"floorDestination,omitempty"`
	Confirmed          bool      `json:"confirmed,omitempty"` // operator-confirmed bookings start as scheduled
	Notes              *string   `json:"notes,omitempty"`
}

// Response the created appointment with its frozen pricing
type Response struct {
	Appointment *apptModels.AppointmentResponse `json:"appointment"`
}
