// Package lookup reads the static reference taxonomies: risk factors,
// types, management methods, statuses and the weighted probability/impact
// scales. The tables are seeded by migration and read-only at runtime.
package lookup

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kirakulakov/risk-management/internal/adapter/postgres"
	"github.com/kirakulakov/risk-management/internal/domain"
)

// Repo provides read access to the lookup catalog.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lookup repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Factors returns all risk factor rows.
func (r *Repo) Factors(ctx context.Context) ([]domain.Lookup, error) {
	return r.all(ctx, "risk_factors", false)
}

// Types returns all risk type rows.
func (r *Repo) Types(ctx context.Context) ([]domain.Lookup, error) {
	return r.all(ctx, "risk_types", false)
}

// Methods returns all risk management method rows.
func (r *Repo) Methods(ctx context.Context) ([]domain.Lookup, error) {
	return r.all(ctx, "risk_management_methods", false)
}

// Statuses returns all risk status rows.
func (r *Repo) Statuses(ctx context.Context) ([]domain.Lookup, error) {
	return r.all(ctx, "risk_statuses", false)
}

// Probabilities returns all probability scale rows with weights.
func (r *Repo) Probabilities(ctx context.Context) ([]domain.Lookup, error) {
	return r.all(ctx, "risk_probabilities", true)
}

// Impacts returns all impact scale rows with weights.
func (r *Repo) Impacts(ctx context.Context) ([]domain.Lookup, error) {
	return r.all(ctx, "risk_impacts", true)
}

// FactorByID returns one risk factor row, or domain.ErrNotFound.
func (r *Repo) FactorByID(ctx context.Context, id int64) (domain.Lookup, error) {
	return r.byID(ctx, "risk_factors", false, id)
}

// TypeByID returns one risk type row, or domain.ErrNotFound.
func (r *Repo) TypeByID(ctx context.Context, id int64) (domain.Lookup, error) {
	return r.byID(ctx, "risk_types", false, id)
}

// MethodByID returns one management method row, or domain.ErrNotFound.
func (r *Repo) MethodByID(ctx context.Context, id int64) (domain.Lookup, error) {
	return r.byID(ctx, "risk_management_methods", false, id)
}

// StatusByID returns one status row, or domain.ErrNotFound.
func (r *Repo) StatusByID(ctx context.Context, id int64) (domain.Lookup, error) {
	return r.byID(ctx, "risk_statuses", false, id)
}

// ProbabilityByID returns one probability row, or domain.ErrNotFound.
func (r *Repo) ProbabilityByID(ctx context.Context, id int64) (domain.Lookup, error) {
	return r.byID(ctx, "risk_probabilities", true, id)
}

// ImpactByID returns one impact row, or domain.ErrNotFound.
func (r *Repo) ImpactByID(ctx context.Context, id int64) (domain.Lookup, error) {
	return r.byID(ctx, "risk_impacts", true, id)
}

func (r *Repo) all(ctx context.Context, tableName string, weighted bool) ([]domain.Lookup, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cols := []string{"id", "name"}
	if weighted {
		cols = append(cols, "value")
	}

	sql, args, err := postgres.Builder().
		Select(cols...).
		From(tableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", tableName, err)
	}
	defer rows.Close()

	var out []domain.Lookup
	for rows.Next() {
		var l domain.Lookup
		if weighted {
			err = rows.Scan(&l.ID, &l.Name, &l.Value)
		} else {
			err = rows.Scan(&l.ID, &l.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", tableName, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", tableName, err)
	}

	return out, nil
}

func (r *Repo) byID(ctx context.Context, tableName string, weighted bool, id int64) (domain.Lookup, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cols := []string{"id", "name"}
	if weighted {
		cols = append(cols, "value")
	}

	sql, args, err := postgres.Builder().
		Select(cols...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Lookup{}, fmt.Errorf("build select query: %w", err)
	}

	var l domain.Lookup
	row := q.QueryRow(ctx, sql, args...)
	if weighted {
		err = row.Scan(&l.ID, &l.Name, &l.Value)
	} else {
		err = row.Scan(&l.ID, &l.Name)
	}
	if err != nil {
		return domain.Lookup{}, postgres.MapError(err, tableName, fmt.Sprintf("%d", id))
	}

	return l, nil
}
