package directory

import (
	"context"
	"errors"
	"fmt"

	customerRepo "github.com/vialibre/dispatch-service/internal/infra/storage/customer"
	resourceRepo "github.com/vialibre/dispatch-service/internal/infra/storage/resource"
	staffRepo "github.com/vialibre/dispatch-service/internal/infra/storage/staff"
	"github.com/vialibre/dispatch-service/internal/service/directory/models"
)

// Service admin CRUD over the customer, staff and resource directories
type Service struct {
	customerRepo CustomerRepository
	staffRepo    StaffRepository
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService creates a new directory service
func NewService(customerRepo CustomerRepository, staffRepo StaffRepository, resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		staffRepo:    staffRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// Customers

// CreateCustomer adds a customer to the directory
func (s *Service) CreateCustomer(ctx context.Context, req *models.CustomerRequest) (*models.CustomerResponse, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	created, err := s.customerRepo.Create(ctx, req.ToDomain(0))
	if err != nil {
		s.logger.Error("CreateCustomer: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCustomer: customer id=%d created", created.ID)
	return models.FromDomainCustomer(created), nil
}

// GetCustomer fetches one customer
func (s *Service) GetCustomer(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetCustomer: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetCustomer - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomer(c), nil
}

// ListCustomers fetches all customers
func (s *Service) ListCustomers(ctx context.Context) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCustomers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCustomers - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomerList(customers), nil
}

// UpdateCustomer rewrites a customer
func (s *Service) UpdateCustomer(ctx context.Context, id int64, req *models.CustomerRequest) (*models.CustomerResponse, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if err := s.customerRepo.Update(ctx, req.ToDomain(id)); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("UpdateCustomer: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCustomer: customer id=%d updated", id)
	return s.GetCustomer(ctx, id)
}

// DeleteCustomer removes a customer
func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		s.logger.Error("DeleteCustomer: repository error for customer id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCustomer: customer id=%d deleted", id)
	return nil
}

// Staff

// CreateStaff adds a staff member to the directory
func (s *Service) CreateStaff(ctx context.Context, req *models.StaffRequest) (*models.StaffResponse, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	member, err := req.ToDomain(0)
	if err != nil {
		s.logger.Warn("CreateStaff: invalid payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		s.logger.Error("CreateStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: staff id=%d created", created.ID)
	return models.FromDomainStaff(created), nil
}

// GetStaff fetches one staff member
func (s *Service) GetStaff(ctx context.Context, id int64) (*models.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaff: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetStaff - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaff(member), nil
}

// ListStaff fetches staff members, optionally only active ones
func (s *Service) ListStaff(ctx context.Context, onlyActive bool) (*models.StaffListResponse, error) {
	members, err := s.staffRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaffList(members), nil
}

// UpdateStaff rewrites a staff member
func (s *Service) UpdateStaff(ctx context.Context, id int64, req *models.StaffRequest) (*models.StaffResponse, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	member, err := req.ToDomain(id)
	if err != nil {
		s.logger.Warn("UpdateStaff: invalid payload for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.staffRepo.Update(ctx, member); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateStaff: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStaff: staff id=%d updated", id)
	return s.GetStaff(ctx, id)
}

// DeleteStaff removes a staff member
func (s *Service) DeleteStaff(ctx context.Context, id int64) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return ErrStaffNotFound
		}
		s.logger.Error("DeleteStaff: repository error for staff id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteStaff: staff id=%d deleted", id)
	return nil
}

// Resources

// CreateResource adds a resource to the directory
func (s *Service) CreateResource(ctx context.Context, req *models.ResourceRequest) (*models.ResourceResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	res, err := req.ToDomain(0)
	if err != nil {
		s.logger.Warn("CreateResource: invalid payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.resourceRepo.Create(ctx, res)
	if err != nil {
		s.logger.Error("CreateResource: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateResource - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateResource: resource id=%d created", created.ID)
	return models.FromDomainResource(created), nil
}

// GetResource fetches one resource
func (s *Service) GetResource(ctx context.Context, id int64) (*models.ResourceResponse, error) {
	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetResource: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetResource - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainResource(res), nil
}

// ListResources fetches resources, optionally only active ones
func (s *Service) ListResources(ctx context.Context, onlyActive bool) (*models.ResourceListResponse, error) {
	resources, err := s.resourceRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListResources: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListResources - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainResourceList(resources), nil
}

// UpdateResource rewrites a resource
func (s *Service) UpdateResource(ctx context.Context, id int64, req *models.ResourceRequest) (*models.ResourceResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	res, err := req.ToDomain(id)
	if err != nil {
		s.logger.Warn("UpdateResource: invalid payload for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.resourceRepo.Update(ctx, res); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		s.logger.Error("UpdateResource: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateResource - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateResource: resource id=%d updated", id)
	return s.GetResource(ctx, id)
}

// DeleteResource removes a resource
func (s *Service) DeleteResource(ctx context.Context, id int64) error {
	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		s.logger.Error("DeleteResource: repository error for resource id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteResource - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteResource: resource id=%d deleted", id)
	return nil
}
