package manage_staff

import (
	"context"

	"github.com/vialibre/dispatch-service/internal/service/directory/models"
)

type DirectoryService interface {
	CreateStaff(ctx context.Context, req *models.StaffRequest) (*models.StaffResponse, error)
	GetStaff(ctx context.Context, id int64) (*models.StaffResponse, error)
	ListStaff(ctx context.Context, onlyActive bool) (*models.StaffListResponse, error)
	UpdateStaff(ctx context.Context, id int64, req *models.StaffRequest) (*models.StaffResponse, error)
	DeleteStaff(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
