package tariffs

import (
	"context"

	"github.com/vialibre/dispatch-service/internal/domain"
	rateRepo "github.com/vialibre/dispatch-service/internal/infra/storage/rate"
)

// ZoneRepository zone storage contract
type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.Zone) (*domain.Zone, error)
	GetByID(ctx context.Context, id int64) (*domain.Zone, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Zone, error)
	List(ctx context.Context) ([]*domain.Zone, error)
	Update(ctx context.Context, zone *domain.Zone) error
	Delete(ctx context.Context, id int64) error
}

// RateRepository zone rate storage contract
type RateRepository interface {
	Create(ctx context.Context, rate *domain.Rate) (*domain.Rate, error)
	GetByID(ctx context.Context, id int64) (*domain.Rate, error)
	ListByZone(ctx context.Context, zoneID int64) ([]*domain.Rate, error)
	Lookup(ctx context.Context, filter rateRepo.LookupFilter) ([]*domain.Rate, error)
	Update(ctx context.Context, rate *domain.Rate) error
	Delete(ctx context.Context, id int64) error
}

// TariffRuleRepository tariff rule storage contract
type TariffRuleRepository interface {
	Create(ctx context.Context, rule *domain.TariffRule) (*domain.TariffRule, error)
	GetByID(ctx context.Context, id int64) (*domain.TariffRule, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.TariffRule, error)
	Update(ctx context.Context, rule *domain.TariffRule) error
	Delete(ctx context.Context, id int64) error
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
