package zone

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/pkg/dbmetrics"
	"github.com/vialibre/dispatch-service/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var zoneColumns = []string{"id", "name", "slug", "is_metro", "created_at", "updated_at"}

// Repository zone storage over PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a zone repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new zone. The slug is unique across zones.
func (r *Repository) Create(ctx context.Context, zone *domain.Zone) (*domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("zones").
		Columns("name", "slug", "is_metro").
		Values(zone.Name, zone.Slug, zone.IsMetro).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&zone.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	zone.CreatedAt = createdAt.Time
	zone.UpdatedAt = updatedAt.Time

	return zone, nil
}

// GetByID fetches one zone
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Zone, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetBySlug fetches one zone by its unique slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Zone, error) {
	return r.getBy(ctx, squirrel.Eq{"slug": slug})
}

// List fetches all zones ordered by name
func (r *Repository) List(ctx context.Context) ([]*domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(zoneColumns...).
		From("zones").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	zones := make([]*domain.Zone, 0)
	for rows.Next() {
		zone, err := scanZone(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return zones, nil
}

// Update rewrites the mutable zone fields
func (r *Repository) Update(ctx context.Context, zone *domain.Zone) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("zones").
		Set("name", zone.Name).
		Set("slug", zone.Slug).
		Set("is_metro", zone.IsMetro).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": zone.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrZoneNotFound
	}

	return nil
}

// Delete removes a zone. Its rates go with it (FK ON DELETE CASCADE) and
// tariff rules scoped to it fall back to general (FK ON DELETE SET NULL).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("zones").
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
		return ErrZoneNotFound
	}

	return nil
}

func (r *Repository) getBy(ctx context.Context, cond squirrel.Eq) (*domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(zoneColumns...).
		From("zones").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getBy - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	zone, err := scanZone(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getBy - scan zone: %v", ErrScanRow, err)
	}

	return zone, nil
}

func scanZone(scan func(dest ...interface{}) error) (*domain.Zone, error) {
	var zone domain.Zone
	var createdAt, updatedAt sql.NullTime

	err := scan(&zone.ID, &zone.Name, &zone.Slug, &zone.IsMetro, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	zone.CreatedAt = createdAt.Time
	zone.UpdatedAt = updatedAt.Time

	return &zone, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
