package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
)

var (
	// ErrInvalidStatus returned on an unknown status value
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// CancelAppointmentRequest cancellation with an operator-supplied reason
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest lifecycle transition request
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListAppointmentsRequest calendar listing filter
type ListAppointmentsRequest struct {
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	CustomerID      *int64     `json:"customerId,omitempty"`
	StaffID         *int64     `json:"staffId,omitempty"`
	ResourceID      *int64     `json:"resourceId,omitempty"`
	ServiceID       *int64     `json:"serviceId,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the repository filter
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		From:            r.From,
		To:              r.To,
		CustomerID:      r.CustomerID,
		StaffID:         r.StaffID,
		ResourceID:      r.ResourceID,
		ServiceID:       r.ServiceID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, ok := domain.ParseAppointmentStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// AppointmentResponse API representation of an appointment
type AppointmentResponse struct {
	ID                 int64           `json:"id"`
	CustomerID         int64           `json:"customerId"`
	StaffID            *int64          `json:"staffId,omitempty"`
	ResourceID         *int64          `json:"resourceId,omitempty"`
	ServiceID          *int64          `json:"serviceId,omitempty"`
	EquipmentType      string          `json:"equipmentType,omitempty"`
	ScheduledAt        time.Time       `json:"scheduledAt"`
	EstimatedDuration  int             `json:"estimatedDurationMinutes"`
	Status             string          `json:"status"`
	TotalAmount        float64         `json:"totalAmount"`
	OriginAddress      string          `json:"originAddress"`
	DestinationAddress string          `json:"destinationAddress"`
	PricingSnapshot    json.RawMessage `json:"pricingSnapshot,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CancellationReason *string         `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time      `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// AppointmentListResponse list wrapper
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment converts a domain appointment into the API model
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID,
		CustomerID:         a.CustomerID,
		StaffID:            a.StaffID,
		ResourceID:         a.ResourceID,
		ServiceID:          a.ServiceID,
		EquipmentType:      string(a.EquipmentType),
		ScheduledAt:        a.ScheduledAt,
		EstimatedDuration:  a.EstimatedDuration,
		Status:             string(a.Status),
		TotalAmount:        a.TotalAmount,
		OriginAddress:      a.OriginAddress,
		DestinationAddress: a.DestinationAddress,
		PricingSnapshot:    a.PricingSnapshot,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a domain appointment slice
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}
