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

// SignUp creates a new account with email + password.
// Returns ErrAlreadyExists if the email is already registered.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	input.ProjectName = strings.TrimSpace(input.ProjectName)
	input.ProjectID = strings.ToUpper(strings.TrimSpace(input.ProjectID))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("account.SignUp hash password: %w", err)
	}

	var description *string
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			description = &d
		}
	}

	// Email uniqueness is enforced by the DB constraint.
	created, err := s.accounts.Create(ctx, domain.Account{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		ProjectName:  input.ProjectName,
		ProjectID:    input.ProjectID,
		Description:  description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("account.SignUp: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("account.SignUp: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(created.ID)
	if err != nil {
		return nil, fmt.Errorf("account.SignUp issue token: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.Int64("account_id", created.ID),
		slog.String("project_id", created.ProjectID),
	)

	return &AuthResult{
		AccessToken: token,
		Account:     accountView(created),
	}, nil
}
