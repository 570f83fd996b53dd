package manage_resources

import (
	"context"

	"github.com/vialibre/dispatch-service/internal/service/directory/models"
)

type DirectoryService interface {
	CreateResource(ctx context.Context, req *models.ResourceRequest) (*models.ResourceResponse, error)
	GetResource(ctx context.Context, id int64) (*models.ResourceResponse, error)
	ListResources(ctx context.Context, onlyActive bool) (*models.ResourceListResponse, error)
	UpdateResource(ctx context.Context, id int64, req *models.ResourceRequest) (*models.ResourceResponse, error)
	DeleteResource(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
