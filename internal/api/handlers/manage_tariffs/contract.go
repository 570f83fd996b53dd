package manage_tariffs

import (
	"context"

	"github.com/vialibre/dispatch-service/internal/service/tariffs/models"
)

type TariffsService interface {
	CreateRule(ctx context.Context, req *models.TariffRuleRequest) (*models.TariffRuleResponse, error)
	GetRule(ctx context.Context, id int64) (*models.TariffRuleResponse, error)
	ListRules(ctx context.Context, onlyActive bool) (*models.TariffRuleListResponse, error)
	UpdateRule(ctx context.Context, id int64, req *models.TariffRuleRequest) (*models.TariffRuleResponse, error)
	DeleteRule(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
