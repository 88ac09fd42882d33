package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kirakulakov/risk-management/internal/domain"
)

// SignIn authenticates an account with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is
// wrong; the two cases are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.ByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.SignIn get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(acc.ID)
	if err != nil {
		return nil, fmt.Errorf("account.SignIn issue token: %w", err)
	}

	s.log.InfoContext(ctx, "account signed in",
		slog.Int64("account_id", acc.ID),
	)

	return &AuthResult{
		AccessToken: token,
		Account:     accountView(acc),
	}, nil
}
