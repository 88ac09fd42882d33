package domain

import "time"

// Risk is one tracked risk-register item. It is owned by exactly one
// account; the (ID, AccountID) pair is the identity, as risk IDs are only
// unique within an account, never globally.
type Risk struct {
	ID          string
	AccountID   int64
	Name        string
	Description *string
	Comment     *string
	FactorID    int64
	TypeID      int64
	MethodID    int64
	StatusID    int64
	// Probability and impact are optional weighted-scale references.
	ProbabilityID *int64
	ImpactID      *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RiskUpdateParams carries a sparse set of fields for a partial update.
// A nil pointer means "leave untouched"; only non-nil fields are written.
type RiskUpdateParams struct {
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

// IsEmpty reports whether the update carries no fields at all.
// An empty update must not produce a write or a history entry.
func (p RiskUpdateParams) IsEmpty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.Comment == nil &&
		p.FactorID == nil &&
		p.TypeID == nil &&
		p.MethodID == nil &&
		p.StatusID == nil &&
		p.ProbabilityID == nil &&
		p.ImpactID == nil
}

// Display labels for tracked fields, stored in history entries.
const (
	FieldName        = "Name"
	FieldDescription = "Description"
	FieldComment     = "Comment"
	FieldFactor      = "Risk factor"
	FieldType        = "Risk type"
	FieldMethod      = "Management method"
	FieldStatus      = "Status"
	FieldProbability = "Probability"
	FieldImpact      = "Impact"
)

// Risk name and free-text limits, enforced at the boundary.
const (
	RiskNameMinLen     = 3
	RiskNameMaxLen     = 260
	RiskFreeTextMaxLen = 2000
)
