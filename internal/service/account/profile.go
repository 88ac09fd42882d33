package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kirakulakov/risk-management/internal/domain"
	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// GetProfile returns the authenticated account's profile.
func (s *Service) GetProfile(ctx context.Context) (AccountView, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return AccountView{}, domain.ErrUnauthorized
	}

	acc, err := s.accounts.ByID(ctx, accountID)
	if err != nil {
		return AccountView{}, fmt.Errorf("account.GetProfile: %w", err)
	}

	return accountView(acc), nil
}

// UpdateProfile applies a sparse patch to the authenticated account's
// profile and returns the fresh state.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateAccountInput) (AccountView, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return AccountView{}, domain.ErrUnauthorized
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		input.Email = &email
	}
	if input.ProjectID != nil {
		code := strings.ToUpper(strings.TrimSpace(*input.ProjectID))
		input.ProjectID = &code
	}

	if err := input.Validate(); err != nil {
		return AccountView{}, err
	}

	if err := s.accounts.Update(ctx, accountID, input.params()); err != nil {
		return AccountView{}, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	acc, err := s.accounts.ByID(ctx, accountID)
	if err != nil {
		return AccountView{}, fmt.Errorf("account.UpdateProfile reload: %w", err)
	}

	s.log.InfoContext(ctx, "account profile updated",
		slog.Int64("account_id", accountID),
	)

	return accountView(acc), nil
}
