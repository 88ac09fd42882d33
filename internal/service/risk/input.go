package risk

import (
	"strings"

	"github.com/kirakulakov/risk-management/internal/domain"
)

// CreateRiskInput holds the parameters for creating a risk. The caller
// supplies the risk id, normally one obtained from NextSequenceID.
type CreateRiskInput struct {
	ID            string
	Name          string
	Description   *string
	Comment       *string
	FactorID      int64
	TypeID        int64
	MethodID      int64
	ProbabilityID *int64
	ImpactID      *int64
}

// Validate checks all fields and collects all errors.
func (i CreateRiskInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateName(strings.TrimSpace(i.Name))...)
	errs = append(errs, validateFreeText("description", i.Description)...)
	errs = append(errs, validateFreeText("comment", i.Comment)...)

	if i.FactorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "factor_id", Message: "required"})
	}
	if i.TypeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "required"})
	}
	if i.MethodID <= 0 {
		errs = append(errs, domain.FieldError{Field: "method_id", Message: "required"})
	}
	if i.ProbabilityID != nil && *i.ProbabilityID <= 0 {
		errs = append(errs, domain.FieldError{Field: "probability_id", Message: "must be positive"})
	}
	if i.ImpactID != nil && *i.ImpactID <= 0 {
		errs = append(errs, domain.FieldError{Field: "impact_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRiskInput holds the sparse parameters for a partial update.
// A nil pointer means "leave the field untouched".
type UpdateRiskInput struct {
	ID            string
	Name          *string
	Description   *string
	Comment       *string
	FactorID      *int64
	TypeID        *int64
	MethodID      *int64
	StatusID      *int64
	ProbabilityID *int64
	ImpactID      *int64
}

// Validate checks all fields and collects all errors. An update carrying
// no fields at all is rejected before any write happens.
func (i UpdateRiskInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.params().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(strings.TrimSpace(*i.Name))...)
	}
	errs = append(errs, validateFreeText("description", i.Description)...)
	errs = append(errs, validateFreeText("comment", i.Comment)...)

	for _, ref := range []struct {
		field string
		id    *int64
	}{
		{"factor_id", i.FactorID},
		{"type_id", i.TypeID},
		{"method_id", i.MethodID},
		{"status_id", i.StatusID},
		{"probability_id", i.ProbabilityID},
		{"impact_id", i.ImpactID},
	} {
		if ref.id != nil && *ref.id <= 0 {
			errs = append(errs, domain.FieldError{Field: ref.field, Message: "must be positive"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// params converts the input into storage-level update params.
func (i UpdateRiskInput) params() domain.RiskUpdateParams {
	return domain.RiskUpdateParams{
		Name:          i.Name,
		Description:   i.Description,
		Comment:       i.Comment,
		FactorID:      i.FactorID,
		TypeID:        i.TypeID,
		MethodID:      i.MethodID,
		StatusID:      i.StatusID,
		ProbabilityID: i.ProbabilityID,
		ImpactID:      i.ImpactID,
	}
}

// ListRisksInput holds normalized pagination for listing risks.
type ListRisksInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListRisksInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit <= 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput holds the parameters for reading a risk's history page.
type HistoryInput struct {
	RiskID string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.RiskID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Limit <= 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteRiskInput holds the parameters for deleting a risk.
type DeleteRiskInput struct {
	ID string
}

// Validate checks all fields and collects all errors.
func (i DeleteRiskInput) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	var errs []domain.FieldError
	if len(name) < domain.RiskNameMinLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "min 3 characters"})
	}
	if len(name) > domain.RiskNameMaxLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 260 characters"})
	}
	return errs
}

func validateFreeText(field string, v *string) []domain.FieldError {
	if v != nil && len(*v) > domain.RiskFreeTextMaxLen {
		return []domain.FieldError{{Field: field, Message: "max 2000 characters"}}
	}
	return nil
}
