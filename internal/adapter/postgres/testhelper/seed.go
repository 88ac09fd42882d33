package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirakulakov/risk-management/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account with a unique email and project code.
// Returns a filled domain.Account.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	acc := domain.Account{
		Email:        "account-" + suffix + "@example.com",
		Name:         "Test Account " + suffix,
		PasswordHash: "$2a$10$fakehashforseedingonly000000000000000000000000000000",
		ProjectName:  "Project " + suffix,
		ProjectID:    "PRJ",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO accounts (email, name, password_hash, project_name, project_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		acc.Email, acc.Name, acc.PasswordHash, acc.ProjectName, acc.ProjectID,
	).Scan(&acc.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return acc
}

// SeedRisk creates a risk for the account with the given id and sane
// defaults over the seeded lookup rows. Returns a filled domain.Risk.
func SeedRisk(t *testing.T, pool *pgxpool.Pool, accountID int64, riskID string) domain.Risk {
	t.Helper()
	ctx := context.Background()

	risk := domain.Risk{
		ID:        riskID,
		AccountID: accountID,
		Name:      "Seeded risk " + riskID,
		FactorID:  1,
		TypeID:    1,
		MethodID:  1,
		StatusID:  domain.DefaultStatusID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO risks (id, account_id, name, risk_factor_id, risk_type_id, risk_management_method_id, risk_status_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at`,
		risk.ID, risk.AccountID, risk.Name, risk.FactorID, risk.TypeID, risk.MethodID, risk.StatusID,
	).Scan(&risk.CreatedAt, &risk.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRisk insert: %v", err)
	}

	return risk
}
