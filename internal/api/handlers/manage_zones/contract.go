package manage_zones

import (
	"context"

	"github.com/vialibre/dispatch-service/internal/service/tariffs/models"
)

type TariffsService interface {
	CreateZone(ctx context.Context, req *models.ZoneRequest) (*models.ZoneResponse, error)
	GetZone(ctx context.Context, id int64) (*models.ZoneResponse, error)
	ListZones(ctx context.Context) (*models.ZoneListResponse, error)
	UpdateZone(ctx context.Context, id int64, req *models.ZoneRequest) (*models.ZoneResponse, error)
	DeleteZone(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
