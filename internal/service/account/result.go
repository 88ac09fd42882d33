package account

import "github.com/kirakulakov/risk-management/internal/domain"

// AuthResult is returned by SignUp and SignIn.
type AuthResult struct {
	AccessToken string
	Account     AccountView
}

// AccountView is the public shape of an account profile. The password
// hash never leaves the service.
type AccountView struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	ProjectName string  `json:"project_name"`
	ProjectID   string  `json:"project_id"`
	Description *string `json:"description"`
}

func accountView(acc domain.Account) AccountView {
	return AccountView{
		ID:          acc.ID,
		Email:       acc.Email,
		Name:        acc.Name,
		ProjectName: acc.ProjectName,
		ProjectID:   acc.ProjectID,
		Description: acc.Description,
	}
}
