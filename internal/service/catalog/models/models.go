package models

import (
	"errors"
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
)

var (
	// ErrInvalidCategory returned on an unknown service category
	ErrInvalidCategory = errors.New("invalid service category")
)

// ServiceRequest create/update payload for a catalog service
type ServiceRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	BasePrice       float64  `json:"basePrice"`
	MinDistanceKm   *float64 `json:"minDistanceKm,omitempty"`
	MaxDistanceKm   *float64 `json:"maxDistanceKm,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	IsActive        bool     `json:"isActive"`
}

// ToDomain converts the payload into a domain service
func (r *ServiceRequest) ToDomain(id int64) (*domain.Service, error) {
	category, err := ToDomainCategory(r.Category)
	if err != nil {
		return nil, err
	}
	return &domain.Service{
		ID:              id,
		Name:            r.Name,
		Category:        category,
		BasePrice:       r.BasePrice,
		MinDistanceKm:   r.MinDistanceKm,
		MaxDistanceKm:   r.MaxDistanceKm,
		DurationMinutes: r.DurationMinutes,
		IsActive:        r.IsActive,
	}, nil
}

// ServiceResponse API representation of a catalog service
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	BasePrice       float64   `json:"basePrice"`
	MinDistanceKm   *float64  `json:"minDistanceKm,omitempty"`
	MaxDistanceKm   *float64  `json:"maxDistanceKm,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse list wrapper
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// FromDomainService converts a domain service into the API model
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Category:        string(s.Category),
		BasePrice:       s.BasePrice,
		MinDistanceKm:   s.MinDistanceKm,
		MaxDistanceKm:   s.MaxDistanceKm,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList converts a domain service slice
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	out := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromDomainService(s))
	}
	return &ServiceListResponse{Services: out, Total: len(out)}
}

// ToDomainCategory validates a raw category value
func ToDomainCategory(s string) (domain.ServiceCategory, error) {
	switch domain.ServiceCategory(s) {
	case domain.CategorySencillo, domain.CategoryDoble, domain.CategoryRoboticaPlegable,
		domain.CategorySoloSilla, domain.CategoryEspera, domain.CategoryRuedasConvencional,
		domain.CategorySoloRuedas:
		return domain.ServiceCategory(s), nil
	}
	return "", ErrInvalidCategory
}
