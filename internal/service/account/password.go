package account

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/kirakulakov/risk-management/internal/domain"
	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// ChangePassword replaces the authenticated account's password after
// verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	acc, err := s.accounts.ByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("account.ChangePassword get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("account.ChangePassword hash password: %w", err)
	}

	if err := s.accounts.UpdatePassword(ctx, accountID, string(hash)); err != nil {
		return fmt.Errorf("account.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "account password changed",
		slog.Int64("account_id", accountID),
	)

	return nil
}
