package pricing

import (
	"context"

	"github.com/vialibre/dispatch-service/internal/domain"
)

// TariffRepository tariff rule storage contract
type TariffRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.TariffRule, error)
}

// ServiceCatalog service catalog storage contract
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Service, error)
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
