package account

import (
	"strings"

	"github.com/kirakulakov/risk-management/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
	projectCodeLen = 3
)

// SignUpInput holds parameters for account registration.
type SignUpInput struct {
	Email       string
	Password    string
	Name        string
	ProjectName string
	ProjectID   string
	Description *string
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validatePassword("password", i.Password)...)

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.ProjectName) == "" {
		errs = append(errs, domain.FieldError{Field: "project_name", Message: "required"})
	}
	if code := strings.TrimSpace(i.ProjectID); len(code) != projectCodeLen {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "must be a 3-character code"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SignInInput holds parameters for password sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAccountInput holds the sparse parameters for a profile update.
type UpdateAccountInput struct {
	Email       *string
	Name        *string
	ProjectName *string
	ProjectID   *string
	Description *string
}

// Validate validates the update input.
func (i UpdateAccountInput) Validate() error {
	var errs []domain.FieldError

	if i.params().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Email != nil {
		errs = append(errs, validateEmail(*i.Email)...)
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.ProjectName != nil && strings.TrimSpace(*i.ProjectName) == "" {
		errs = append(errs, domain.FieldError{Field: "project_name", Message: "required"})
	}
	if i.ProjectID != nil && len(strings.TrimSpace(*i.ProjectID)) != projectCodeLen {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "must be a 3-character code"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateAccountInput) params() domain.AccountUpdateParams {
	return domain.AccountUpdateParams{
		Email:       i.Email,
		Name:        i.Name,
		ProjectName: i.ProjectName,
		ProjectID:   i.ProjectID,
		Description: i.Description,
	}
}

// ChangePasswordInput holds parameters for a password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the change-password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError
	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	errs = append(errs, validatePassword("new_password", i.NewPassword)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@"):
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	case len(email) > 320:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	return nil
}

func validatePassword(field, password string) []domain.FieldError {
	switch {
	case password == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(password) < minPasswordLen:
		return []domain.FieldError{{Field: field, Message: "min 8 characters"}}
	case len(password) > maxPasswordLen:
		return []domain.FieldError{{Field: field, Message: "max 72 characters"}}
	}
	return nil
}
