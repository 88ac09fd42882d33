// Package history implements the risk audit trail using PostgreSQL.
// Rows are append-only: entries are created exactly once per changed
// tracked field and never updated; they are removed only when their risk
// is deleted.
package history

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

const table = "risk_history"

var columns = []string{
	"id",
	"risk_id",
	"account_id",
	"updated_field",
	"old_value",
	"new_value",
	"prev_history_id",
	"created_at",
}

// Repo provides audit trail persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append inserts one history entry and returns the persisted row with its
// server-assigned id and timestamp. Entry.PrevID must already point at the
// risk's latest entry (or be nil for the first one); the caller appends
// inside the same transaction as the risk mutation.
func (r *Repo) Append(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("risk_id", "account_id", "updated_field", "old_value", "new_value", "prev_history_id").
		Values(entry.RiskID, entry.AccountID, entry.Field, entry.OldValue, entry.NewValue, entry.PrevID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("build insert query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return domain.HistoryEntry{}, postgres.MapError(err, "history entry", entry.RiskID)
	}

	return entry, nil
}

// LatestID returns the id of the most recent history entry for the risk
// (the head of the prev-pointer chain), or nil when the risk has none.
func (r *Repo) LatestID(ctx context.Context, riskID string, accountID int64) (*int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("id").
		From(table).
		Where(squirrel.Eq{"risk_id": riskID, "account_id": accountID}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest id query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "history entry", riskID)
	}

	return &id, nil
}

// ListByRisk returns a page of the risk's history, most recent first.
func (r *Repo) ListByRisk(ctx context.Context, riskID string, accountID int64, limit, offset int) ([]domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"risk_id": riskID, "account_id": accountID}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(
			&e.ID,
			&e.RiskID,
			&e.AccountID,
			&e.Field,
			&e.OldValue,
			&e.NewValue,
			&e.PrevID,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return entries, nil
}

// CountByRisk returns the number of history entries for the risk.
func (r *Repo) CountByRisk(ctx context.Context, riskID string, accountID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"risk_id": riskID, "account_id": accountID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}

	return count, nil
}

// DeleteByRisk removes every history entry for the risk. Called inside the
// same transaction as the risk delete so no orphaned entries can remain.
// Deleting zero rows is not an error: a risk may have no history.
func (r *Repo) DeleteByRisk(ctx context.Context, riskID string, accountID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"risk_id": riskID, "account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "history entry", riskID)
	}

	return nil
}
