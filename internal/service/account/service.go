// Package account implements registration, password sign-in and account
// profile management. Every risk in the system belongs to exactly one
// account, and the account's project code prefixes its risk ids.
package account

import (
	"context"
	"log/slog"

	"github.com/kirakulakov/risk-management/internal/config"
	"github.com/kirakulakov/risk-management/internal/domain"
)

// accountRepo defines the account repository interface needed by the service.
type accountRepo interface {
	Create(ctx context.Context, acc domain.Account) (domain.Account, error)
	ByEmail(ctx context.Context, email string) (domain.Account, error)
	ByID(ctx context.Context, id int64) (domain.Account, error)
	Update(ctx context.Context, accountID int64, params domain.AccountUpdateParams) error
	UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error
}

// jwtManager defines the token management interface needed by the service.
type jwtManager interface {
	GenerateAccessToken(accountID int64) (string, error)
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		accounts: accounts,
		jwt:      jwt,
		cfg:      cfg,
	}
}
