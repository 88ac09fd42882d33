// Package account implements account persistence using PostgreSQL.
package account

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kirakulakov/risk-management/internal/adapter/postgres"
	"github.com/kirakulakov/risk-management/internal/domain"
)

const table = "accounts"

var columns = []string{
	"id",
	"email",
	"name",
	"password_hash",
	"project_name",
	"project_id",
	"description",
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new account and returns it with the assigned id.
// A duplicate email maps to domain.ErrAlreadyExists via the unique index.
func (r *Repo) Create(ctx context.Context, acc domain.Account) (domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("email", "name", "password_hash", "project_name", "project_id", "description").
		Values(acc.Email, acc.Name, acc.PasswordHash, acc.ProjectName, acc.ProjectID, acc.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Account{}, fmt.Errorf("build insert query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&acc.ID); err != nil {
		return domain.Account{}, postgres.MapError(err, "account", acc.Email)
	}

	return acc, nil
}

// ByEmail returns the account with the given email, or domain.ErrNotFound.
func (r *Repo) ByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.one(ctx, squirrel.Eq{"email": email}, email)
}

// ByID returns the account with the given id, or domain.ErrNotFound.
func (r *Repo) ByID(ctx context.Context, id int64) (domain.Account, error) {
	return r.one(ctx, squirrel.Eq{"id": id}, strconv.FormatInt(id, 10))
}

// ProjectID returns the short project code for the account.
func (r *Repo) ProjectID(ctx context.Context, accountID int64) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("project_id").
		From(table).
		Where(squirrel.Eq{"id": accountID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build select query: %w", err)
	}

	var projectID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&projectID); err != nil {
		return "", postgres.MapError(err, "account", strconv.FormatInt(accountID, 10))
	}

	return projectID, nil
}

// Update writes only the fields present in params.
func (r *Repo) Update(ctx context.Context, accountID int64, params domain.AccountUpdateParams) error {
	if params.IsEmpty() {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := postgres.Builder().
		Update(table).
		Where(squirrel.Eq{"id": accountID})

	if params.Email != nil {
		update = update.Set("email", *params.Email)
	}
	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.ProjectName != nil {
		update = update.Set("project_name", *params.ProjectName)
	}
	if params.ProjectID != nil {
		update = update.Set("project_id", *params.ProjectID)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "account", strconv.FormatInt(accountID, 10))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", accountID, domain.ErrNotFound)
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("password_hash", passwordHash).
		Where(squirrel.Eq{"id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "account", strconv.FormatInt(accountID, 10))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", accountID, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) one(ctx context.Context, where squirrel.Eq, key string) (domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return domain.Account{}, fmt.Errorf("build select query: %w", err)
	}

	var acc domain.Account
	err = q.QueryRow(ctx, sql, args...).Scan(
		&acc.ID,
		&acc.Email,
		&acc.Name,
		&acc.PasswordHash,
		&acc.ProjectName,
		&acc.ProjectID,
		&acc.Description,
	)
	if err != nil {
		return domain.Account{}, postgres.MapError(err, "account", key)
	}

	return acc, nil
}
