package manage_rates

import (
	"context"

	"github.com/vialibre/dispatch-service/internal/service/tariffs/models"
)

type TariffsService interface {
	CreateRate(ctx context.Context, zoneID int64, req *models.RateRequest) (*models.RateResponse, error)
	GetRate(ctx context.Context, id int64) (*models.RateResponse, error)
	ListRates(ctx context.Context, zoneID int64) (*models.RateListResponse, error)
	UpdateRate(ctx context.Context, id, zoneID int64, req *models.RateRequest) (*models.RateResponse, error)
	DeleteRate(ctx context.Context, id int64) error
	LookupRates(ctx context.Context, req *models.RateLookupRequest) (*models.RateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
