package manage_customers

import (
	"context"

	"github.com/vialibre/dispatch-service/internal/service/directory/models"
)

type DirectoryService interface {
	CreateCustomer(ctx context.Context, req *models.CustomerRequest) (*models.CustomerResponse, error)
	GetCustomer(ctx context.Context, id int64) (*models.CustomerResponse, error)
	ListCustomers(ctx context.Context) (*models.CustomerListResponse, error)
	UpdateCustomer(ctx context.Context, id int64, req *models.CustomerRequest) (*models.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
