package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/vialibre/dispatch-service/internal/domain"
	catalogRepo "github.com/vialibre/dispatch-service/internal/infra/storage/catalog"
	"github.com/vialibre/dispatch-service/internal/service/catalog/models"
)

// Service admin CRUD over the service catalog
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService creates a new catalog service
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create adds a service to the catalog
func (s *Service) Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	svc, err := s.validate(req, 0)
	if err != nil {
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%d %q created", created.ID, created.Name)
	return models.FromDomainService(created), nil
}

// GetByID fetches one service
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(svc), nil
}

// List fetches services, optionally only active ones
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// Update rewrites a service
func (s *Service) Update(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	svc, err := s.validate(req, id)
	if err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service id=%d updated", id)
	return s.GetByID(ctx, id)
}

// Delete removes a service from the catalog
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service id=%d deleted", id)
	return nil
}

func (s *Service) validate(req *models.ServiceRequest, id int64) (*domain.Service, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.BasePrice < 0 {
		return nil, fmt.Errorf("%w: basePrice must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.MinDistanceKm != nil && req.MaxDistanceKm != nil && *req.MinDistanceKm > *req.MaxDistanceKm {
		return nil, fmt.Errorf("%w: minDistanceKm must not exceed maxDistanceKm", ErrInvalidInput)
	}

	svc, err := req.ToDomain(id)
	if err != nil {
		s.logger.Warn("validate: invalid payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return svc, nil
}
