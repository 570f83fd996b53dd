package models

import (
	"errors"
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
)

var (
	// ErrInvalidRole returned on an unknown staff role
	ErrInvalidRole = errors.New("invalid staff role")

	// ErrInvalidKind returned on an unknown resource kind
	ErrInvalidKind = errors.New("invalid resource kind")
)

// Request models

// CustomerRequest create/update payload for a customer
type CustomerRequest struct {
	FullName string  `json:"fullName"`
	Document string  `json:"document"`
	Phone    string  `json:"phone"`
	Address  *string `json:"address,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// ToDomain converts the payload into a domain customer
func (r *CustomerRequest) ToDomain(id int64) *domain.Customer {
	return &domain.Customer{
		ID:       id,
		FullName: r.FullName,
		Document: r.Document,
		Phone:    r.Phone,
		Address:  r.Address,
		Notes:    r.Notes,
	}
}

// StaffRequest create/update payload for a staff member
type StaffRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// ToDomain converts the payload into a domain staff member
func (r *StaffRequest) ToDomain(id int64) (*domain.Staff, error) {
	role, err := ToDomainRole(r.Role)
	if err != nil {
		return nil, err
	}
	return &domain.Staff{
		ID:       id,
		FullName: r.FullName,
		Phone:    r.Phone,
		Role:     role,
		IsActive: r.IsActive,
	}, nil
}

// ResourceRequest create/update payload for a resource
type ResourceRequest struct {
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Plate    *string `json:"plate,omitempty"`
	IsActive bool    `json:"isActive"`
}

// ToDomain converts the payload into a domain resource
func (r *ResourceRequest) ToDomain(id int64) (*domain.Resource, error) {
	kind, err := ToDomainKind(r.Kind)
	if err != nil {
		return nil, err
	}
	return &domain.Resource{
		ID:       id,
		Name:     r.Name,
		Kind:     kind,
		Plate:    r.Plate,
		IsActive: r.IsActive,
	}, nil
}

// Response models

// CustomerResponse API representation of a customer
type CustomerResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerListResponse list wrapper
type CustomerListResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int                 `json:"total"`
}

// StaffResponse API representation of a staff member
type StaffResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StaffListResponse list wrapper
type StaffListResponse struct {
	Staff []*StaffResponse `json:"staff"`
	Total int              `json:"total"`
}

// ResourceResponse API representation of a resource
type ResourceResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Plate     *string   `json:"plate,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResourceListResponse list wrapper
type ResourceListResponse struct {
	Resources []*ResourceResponse `json:"resources"`
	Total     int                 `json:"total"`
}

// Converters

// FromDomainCustomer converts a domain customer into the API model
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Document:  c.Document,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainCustomerList converts a domain customer slice
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	out := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromDomainCustomer(c))
	}
	return &CustomerListResponse{Customers: out, Total: len(out)}
}

// FromDomainStaff converts a domain staff member into the API model
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	return &StaffResponse{
		ID:        s.ID,
		FullName:  s.FullName,
		Phone:     s.Phone,
		Role:      string(s.Role),
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainStaffList converts a domain staff slice
func FromDomainStaffList(members []*domain.Staff) *StaffListResponse {
	out := make([]*StaffResponse, 0, len(members))
	for _, s := range members {
		out = append(out, FromDomainStaff(s))
	}
	return &StaffListResponse{Staff: out, Total: len(out)}
}

// FromDomainResource converts a domain resource into the API model
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:        r.ID,
		Name:      r.Name,
		Kind:      string(r.Kind),
		Plate:     r.Plate,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainResourceList converts a domain resource slice
func FromDomainResourceList(resources []*domain.Resource) *ResourceListResponse {
	out := make([]*ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, FromDomainResource(r))
	}
	return &ResourceListResponse{Resources: out, Total: len(out)}
}

// ToDomainRole validates a raw staff role value
func ToDomainRole(s string) (domain.StaffRole, error) {
	switch domain.StaffRole(s) {
	case domain.RoleDriver, domain.RoleAssistant:
		return domain.StaffRole(s), nil
	}
	return "", ErrInvalidRole
}

// ToDomainKind validates a raw resource kind value
func ToDomainKind(s string) (domain.ResourceKind, error) {
	switch domain.ResourceKind(s) {
	case domain.ResourceVehicle, domain.ResourceWheelchair:
		return domain.ResourceKind(s), nil
	}
	return "", ErrInvalidKind
}
