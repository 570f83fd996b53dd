package domain

import "time"

// Customer a rider in the customer directory
type Customer struct {
	ID       int64
	FullName string
	Document string // national ID
	Phone    string
	Address  *string
	Notes    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffRole role of a staff member
type StaffRole string

const (
	RoleDriver    StaffRole = "driver"
	RoleAssistant StaffRole = "assistant"
)

// Staff a driver or trip assistant
type Staff struct {
	ID       int64
	FullName string
	Phone    string
	Role     StaffRole
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResourceKind kind of bookable asset
type ResourceKind string

const (
	ResourceVehicle    ResourceKind = "vehicle"
	ResourceWheelchair ResourceKind = "wheelchair"
)

// Resource a bookable asset (ramp vehicle, robotic chair, ...)
type Resource struct {
	ID       int64
	Name     string
	Kind     ResourceKind
	Plate    *string // vehicles only
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
