// Package risk implements the risk store using PostgreSQL.
// All operations are scoped by account id; a risk id is only unique
// within one account.
package risk

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kirakulakov/risk-management/internal/adapter/postgres"
	"github.com/kirakulakov/risk-management/internal/domain"
)

const table = "risks"

var columns = []string{
	"id",
	"account_id",
	"name",
	"description",
	"comment",
	"risk_factor_id",
	"risk_type_id",
	"risk_management_method_id",
	"risk_status_id",
	"risk_probability_id",
	"risk_impact_id",
	"created_at",
	"updated_at",
}

// Repo provides risk persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new risk repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Exists reports whether a risk with the given id exists for the account.
// Used as a precondition gate before create and update/delete so callers
// can return "not found" or "conflict" instead of silently no-op-ing.
func (r *Repo) Exists(ctx context.Context, riskID string, accountID int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"id": riskID, "account_id": accountID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var one int
	if err := q.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, postgres.MapError(err, "risk", riskID)
	}

	return true, nil
}

// Create inserts a new risk row and returns the persisted risk with
// server-assigned timestamps. The (id, account_id) primary key turns a
// concurrent duplicate insert into domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, risk domain.Risk) (domain.Risk, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "account_id", "name", "description", "comment",
			"risk_factor_id", "risk_type_id", "risk_management_method_id",
			"risk_status_id", "risk_probability_id", "risk_impact_id",
		).
		Values(
			risk.ID, risk.AccountID, risk.Name, risk.Description, risk.Comment,
			risk.FactorID, risk.TypeID, risk.MethodID,
			risk.StatusID, risk.ProbabilityID, risk.ImpactID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return domain.Risk{}, fmt.Errorf("build insert query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&risk.CreatedAt, &risk.UpdatedAt); err != nil {
		return domain.Risk{}, postgres.MapError(err, "risk", risk.ID)
	}

	return risk, nil
}

// PartialUpdate writes only the fields present in params; absent fields are
// left untouched. Callers must not pass an empty params set (the service
// treats that as a no-op before reaching the store).
func (r *Repo) PartialUpdate(ctx context.Context, riskID string, accountID int64, params domain.RiskUpdateParams) error {
	if params.IsEmpty() {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": riskID, "account_id": accountID})

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.Comment != nil {
		update = update.Set("comment", *params.Comment)
	}
	if params.FactorID != nil {
		update = update.Set("risk_factor_id", *params.FactorID)
	}
	if params.TypeID != nil {
		update = update.Set("risk_type_id", *params.TypeID)
	}
	if params.MethodID != nil {
		update = update.Set("risk_management_method_id", *params.MethodID)
	}
	if params.StatusID != nil {
		update = update.Set("risk_status_id", *params.StatusID)
	}
	if params.ProbabilityID != nil {
		update = update.Set("risk_probability_id", *params.ProbabilityID)
	}
	if params.ImpactID != nil {
		update = update.Set("risk_impact_id", *params.ImpactID)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "risk", riskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("risk %s: %w", riskID, domain.ErrNotFound)
	}

	return nil
}

// GetByID returns the full risk row, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, riskID string, accountID int64) (domain.Risk, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": riskID, "account_id": accountID}).
		ToSql()
	if err != nil {
		return domain.Risk{}, fmt.Errorf("build select query: %w", err)
	}

	risk, err := scanRisk(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Risk{}, postgres.MapError(err, "risk", riskID)
	}

	return risk, nil
}

// List returns a page of the account's risks ordered by creation time
// descending; created_at ties break on id so pagination is stable.
func (r *Repo) List(ctx context.Context, accountID int64, limit, offset int) ([]domain.Risk, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}
	defer rows.Close()

	var risks []domain.Risk
	for rows.Next() {
		risk, err := scanRisk(rows)
		if err != nil {
			return nil, fmt.Errorf("scan risk: %w", err)
		}
		risks = append(risks, risk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}

	return risks, nil
}

// Delete removes the risk row. History rows are removed by the history
// repository inside the same transaction; the service owns that ordering.
// Returns domain.ErrNotFound when the risk does not exist.
func (r *Repo) Delete(ctx context.Context, riskID string, accountID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": riskID, "account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "risk", riskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("risk %s: %w", riskID, domain.ErrNotFound)
	}

	return nil
}

// MaxRiskID returns MAX(id) for the account, or "" when the account has no
// risks yet. Risk ids follow the {project_id}-NNNN convention, so the
// lexicographic maximum is also the numerically latest id.
func (r *Repo) MaxRiskID(ctx context.Context, accountID int64) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("MAX(id)").
		From(table).
		Where(squirrel.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build max id query: %w", err)
	}

	var maxID *string
	if err := q.QueryRow(ctx, sql, args...).Scan(&maxID); err != nil {
		return "", fmt.Errorf("max risk id: %w", err)
	}
	if maxID == nil {
		return "", nil
	}

	return *maxID, nil
}

// scanRisk reads one row in `columns` order.
func scanRisk(row pgx.Row) (domain.Risk, error) {
	var risk domain.Risk
	err := row.Scan(
		&risk.ID,
		&risk.AccountID,
		&risk.Name,
		&risk.Description,
		&risk.Comment,
		&risk.FactorID,
		&risk.TypeID,
		&risk.MethodID,
		&risk.StatusID,
		&risk.ProbabilityID,
		&risk.ImpactID,
		&risk.CreatedAt,
		&risk.UpdatedAt,
	)
	if err != nil {
		return domain.Risk{}, err
	}
	return risk, nil
}
