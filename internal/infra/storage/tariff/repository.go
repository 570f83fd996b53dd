package tariff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/pkg/dbmetrics"
	"github.com/vialibre/dispatch-service/pkg/psqlbuilder"
)

// rule columns joined with the zone name for address matching
var ruleColumns = []string{
	"r.id",
	"r.zone_id",
	"z.name",
	"r.service_id",
	"r.pricing_mode",
	"r.fixed_price",
	"r.price_per_km",
	"r.min_price",
	"r.is_active",
	"r.created_at",
	"r.updated_at",
}

// Repository tariff rule storage over PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a tariff rule repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a tariff rule together with its distance tiers
func (r *Repository) Create(ctx context.Context, rule *domain.TariffRule) (*domain.TariffRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tariff_rules").
		Columns("zone_id", "service_id", "pricing_mode", "fixed_price",
			"price_per_km", "min_price", "is_active").
		Values(rule.ZoneID, rule.ServiceID, rule.PricingMode, rule.FixedPrice,
			rule.PricePerKm, rule.MinPrice, rule.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	if err := r.insertTiers(ctx, executor, rule.ID, rule.Tiers); err != nil {
		return nil, err
	}

	return rule, nil
}

// GetByID fetches one tariff rule with its tiers
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TariffRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectRules().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	rule, err := scanRule(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	if err := r.loadTiers(ctx, executor, []*domain.TariffRule{rule}); err != nil {
		return nil, err
	}

	return rule, nil
}

// List fetches tariff rules, optionally only active ones, with tiers attached.
// The pricing engine calls this with onlyActive=true on every quote.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.TariffRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectRules().OrderBy("r.zone_id ASC NULLS LAST, r.id ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.TariffRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if err := r.loadTiers(ctx, executor, rules); err != nil {
		return nil, err
	}

	return rules, nil
}

// Update rewrites a tariff rule and replaces its tiers
func (r *Repository) Update(ctx context.Context, rule *domain.TariffRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tariff_rules").
		Set("zone_id", rule.ZoneID).
		Set("service_id", rule.ServiceID).
		Set("pricing_mode", rule.PricingMode).
		Set("fixed_price", rule.FixedPrice).
		Set("price_per_km", rule.PricePerKm).
		Set("min_price", rule.MinPrice).
		Set("is_active", rule.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("distance_tiers").
		Where(squirrel.Eq{"tariff_rule_id": rule.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build tier delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Update - delete old tiers: %v", ErrExecQuery, err)
	}

	return r.insertTiers(ctx, executor, rule.ID, rule.Tiers)
}

// Delete removes a tariff rule. Tiers cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tariff_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

func (r *Repository) selectRules() squirrel.SelectBuilder {
	return psqlbuilder.Select(ruleColumns...).
		From("tariff_rules r").
		LeftJoin("zones z ON z.id = r.zone_id")
}

func (r *Repository) insertTiers(ctx context.Context, executor dbmetrics.DBExecutor, ruleID int64, tiers []domain.DistanceTier) error {
	if len(tiers) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("distance_tiers").
		Columns("tariff_rule_id", "min_km", "max_km", "price")
	for _, tier := range tiers {
		insertBuilder = insertBuilder.Values(ruleID, tier.MinKm, tier.MaxKm, tier.Price)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertTiers - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertTiers - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadTiers attaches distance tiers to the given rules in one query
func (r *Repository) loadTiers(ctx context.Context, executor dbmetrics.DBExecutor, rules []*domain.TariffRule) error {
	if len(rules) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.TariffRule, len(rules))
	ids := make([]int64, 0, len(rules))
	for _, rule := range rules {
		byID[rule.ID] = rule
		ids = append(ids, rule.ID)
	}

	query, args, err := psqlbuilder.Select("id", "tariff_rule_id", "min_km", "max_km", "price").
		From("distance_tiers").
		Where(squirrel.Eq{"tariff_rule_id": ids}).
		OrderBy("tariff_rule_id ASC, min_km ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadTiers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadTiers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var tier domain.DistanceTier
		var ruleID int64
		if err := rows.Scan(&tier.ID, &ruleID, &tier.MinKm, &tier.MaxKm, &tier.Price); err != nil {
			return fmt.Errorf("%w: loadTiers - scan row: %v", ErrScanRow, err)
		}
		if rule, ok := byID[ruleID]; ok {
			rule.Tiers = append(rule.Tiers, tier)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadTiers - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func scanRule(scan func(dest ...interface{}) error) (*domain.TariffRule, error) {
	var rule domain.TariffRule
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&rule.ID,
		&rule.ZoneID,
		&rule.ZoneName,
		&rule.ServiceID,
		&rule.PricingMode,
		&rule.FixedPrice,
		&rule.PricePerKm,
		&rule.MinPrice,
		&rule.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
