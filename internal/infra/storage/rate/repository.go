package rate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/pkg/dbmetrics"
	"github.com/vialibre/dispatch-service/pkg/psqlbuilder"
)

var rateColumns = []string{
	"id",
	"zone_id",
	"trip_type",
	"equipment_type",
	"origin_type",
	"min_km",
	"max_km",
	"destination_name",
	"price",
	"created_at",
	"updated_at",
}

// LookupFilter criteria for resolving one rate from the rate table
type LookupFilter struct {
	ZoneID        int64
	TripType      domain.TripType
	EquipmentType domain.EquipmentType
	OriginType    *domain.OriginType
	DistanceKm    *float64
}

// Repository zone rate storage over PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a rate repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new rate
func (r *Repository) Create(ctx context.Context, rate *domain.Rate) (*domain.Rate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rates").
		Columns("zone_id", "trip_type", "equipment_type", "origin_type",
			"min_km", "max_km", "destination_name", "price").
		Values(rate.ZoneID, rate.TripType, rate.EquipmentType, rate.OriginType,
			rate.MinKm, rate.MaxKm, rate.DestinationName, rate.Price).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rate.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rate.CreatedAt = createdAt.Time
	rate.UpdatedAt = updatedAt.Time

	return rate, nil
}

// GetByID fetches one rate
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Rate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rateColumns...).
		From("rates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	rate, err := scanRate(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrRateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rate: %v", ErrScanRow, err)
	}

	return rate, nil
}

// ListByZone fetches all rates of a zone
func (r *Repository) ListByZone(ctx context.Context, zoneID int64) ([]*domain.Rate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rateColumns...).
		From("rates").
		Where(squirrel.Eq{"zone_id": zoneID}).
		OrderBy("trip_type ASC, equipment_type ASC, min_km ASC NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByZone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByZone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRates(rows)
}

// Lookup resolves the rates matching a zone + trip combination. Distance
// filtering against the nullable range bounds happens in the caller via
// domain.Rate.CoversDistance, so the query stays index-friendly.
func (r *Repository) Lookup(ctx context.Context, filter LookupFilter) ([]*domain.Rate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rateColumns...).
		From("rates").
		Where(squirrel.Eq{
			"zone_id":        filter.ZoneID,
			"trip_type":      filter.TripType,
			"equipment_type": filter.EquipmentType,
		}).
		OrderBy("min_km ASC NULLS FIRST")

	if filter.OriginType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"origin_type": *filter.OriginType},
			squirrel.Eq{"origin_type": nil},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Lookup - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Lookup - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRates(rows)
}

// Update rewrites the mutable rate fields
func (r *Repository) Update(ctx context.Context, rate *domain.Rate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rates").
		Set("trip_type", rate.TripType).
		Set("equipment_type", rate.EquipmentType).
		Set("origin_type", rate.OriginType).
		Set("min_km", rate.MinKm).
		Set("max_km", rate.MaxKm).
		Set("destination_name", rate.DestinationName).
		Set("price", rate.Price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rate.ID}).
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
		return ErrRateNotFound
	}

	return nil
}

// Delete removes a rate
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rates").
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
		return ErrRateNotFound
	}

	return nil
}

func scanRate(scan func(dest ...interface{}) error) (*domain.Rate, error) {
	var rate domain.Rate
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&rate.ID,
		&rate.ZoneID,
		&rate.TripType,
		&rate.EquipmentType,
		&rate.OriginType,
		&rate.MinKm,
		&rate.MaxKm,
		&rate.DestinationName,
		&rate.Price,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rate.CreatedAt = createdAt.Time
	rate.UpdatedAt = updatedAt.Time

	return &rate, nil
}

func scanRates(rows *sql.Rows) ([]*domain.Rate, error) {
	rates := make([]*domain.Rate, 0)

	for rows.Next() {
		rate, err := scanRate(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRates - scan row: %v", ErrScanRow, err)
		}
		rates = append(rates, rate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRates - rows error: %v", ErrScanRow, err)
	}

	return rates, nil
}
