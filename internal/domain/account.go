package domain

// Account owns risks. ProjectID is the short project code used as the
// prefix of generated risk identifiers ({project_id}-NNNN).
type Account struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	ProjectName  string
	ProjectID    string
	Description  *string
}

// AccountUpdateParams carries a sparse account patch; nil means untouched.
type AccountUpdateParams struct {
	Email       *string
	Name        *string
	ProjectName *string
	ProjectID   *string
	Description *string
}

// IsEmpty reports whether the patch carries no fields.
func (p AccountUpdateParams) IsEmpty() bool {
	return p.Email == nil &&
		p.Name == nil &&
		p.ProjectName == nil &&
		p.ProjectID == nil &&
		p.Description == nil
}
