package risk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kirakulakov/risk-management/internal/domain"
	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// UpdateRisk applies a sparse patch to a risk and records one history
// entry per tracked field whose value actually changed. The risk mutation
// and the audit append commit in the same transaction: if the audit write
// fails, the mutation is rolled back.
func (s *Service) UpdateRisk(ctx context.Context, input UpdateRiskInput) (RiskView, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return RiskView{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return RiskView{}, err
	}

	riskID := strings.TrimSpace(input.ID)

	params := input.params()
	if params.Name != nil {
		trimmed := strings.TrimSpace(*params.Name)
		params.Name = &trimmed
	}
	// Free text gets the same normalization as on create, so an update
	// that resubmits a stored value with extra whitespace is not a change.
	params.Description = trimOrNil(params.Description)
	params.Comment = trimOrNil(params.Comment)

	// One catalog snapshot serves reference validation, history display
	// values and the final response.
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return RiskView{}, err
	}
	if err := validateRefs(params, catalog); err != nil {
		return RiskView{}, err
	}

	var updated domain.Risk
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Fetch old state inside the transaction for an accurate diff.
		old, getErr := s.risks.GetByID(txCtx, riskID, accountID)
		if getErr != nil {
			return fmt.Errorf("get risk: %w", getErr)
		}

		if updErr := s.risks.PartialUpdate(txCtx, riskID, accountID, params); updErr != nil {
			return fmt.Errorf("update risk: %w", updErr)
		}

		var freshErr error
		updated, freshErr = s.risks.GetByID(txCtx, riskID, accountID)
		if freshErr != nil {
			return fmt.Errorf("reload risk: %w", freshErr)
		}

		changes, diffErr := buildRiskChanges(old, updated, catalog)
		if diffErr != nil {
			return diffErr
		}
		if len(changes) == 0 {
			return nil
		}

		prev, latestErr := s.history.LatestID(txCtx, riskID, accountID)
		if latestErr != nil {
			return fmt.Errorf("find latest history entry: %w", latestErr)
		}
		for _, c := range changes {
			entry, appendErr := s.history.Append(txCtx, domain.HistoryEntry{
				RiskID:    riskID,
				AccountID: accountID,
				Field:     c.field,
				OldValue:  c.oldValue,
				NewValue:  c.newValue,
				PrevID:    prev,
			})
			if appendErr != nil {
				return fmt.Errorf("append history entry: %w", appendErr)
			}
			prev = &entry.ID
		}

		return nil
	})
	if err != nil {
		return RiskView{}, err
	}

	s.log.InfoContext(ctx, "risk updated",
		slog.Int64("account_id", accountID),
		slog.String("risk_id", riskID),
	)

	return resolveRisk(updated, catalog)
}

// validateRefs checks every supplied foreign key against the catalog so a
// bad reference comes back as field-level input feedback instead of a
// constraint violation from the database.
func validateRefs(params domain.RiskUpdateParams, catalog domain.Catalog) error {
	var errs []domain.FieldError

	check := func(field string, id *int64, set []domain.Lookup) {
		if id == nil {
			return
		}
		if _, ok := domain.Find(set, *id); !ok {
			errs = append(errs, domain.FieldError{Field: field, Message: "unknown reference"})
		}
	}
	check("factor_id", params.FactorID, catalog.Factors)
	check("type_id", params.TypeID, catalog.Types)
	check("method_id", params.MethodID, catalog.Methods)
	check("status_id", params.StatusID, catalog.Statuses)
	check("probability_id", params.ProbabilityID, catalog.Probabilities)
	check("impact_id", params.ImpactID, catalog.Impacts)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

type riskChange struct {
	field    string
	oldValue *string
	newValue string
}

// buildRiskChanges diffs two states of a risk and returns one change per
// tracked field whose value differs. Foreign-key fields compare on the id
// but store the resolved display name; setting a field to its current
// value therefore never yields a change.
func buildRiskChanges(old, updated domain.Risk, catalog domain.Catalog) ([]riskChange, error) {
	var changes []riskChange

	if old.Name != updated.Name {
		changes = append(changes, riskChange{
			field:    domain.FieldName,
			oldValue: ptr(old.Name),
			newValue: updated.Name,
		})
	}
	if c, changed := diffText(domain.FieldDescription, old.Description, updated.Description); changed {
		changes = append(changes, c)
	}
	if c, changed := diffText(domain.FieldComment, old.Comment, updated.Comment); changed {
		changes = append(changes, c)
	}

	refDiffs := []struct {
		field  string
		oldID  *int64
		newID  *int64
		set    []domain.Lookup
		riskID string
	}{
		{domain.FieldFactor, &old.FactorID, &updated.FactorID, catalog.Factors, old.ID},
		{domain.FieldType, &old.TypeID, &updated.TypeID, catalog.Types, old.ID},
		{domain.FieldMethod, &old.MethodID, &updated.MethodID, catalog.Methods, old.ID},
		{domain.FieldStatus, &old.StatusID, &updated.StatusID, catalog.Statuses, old.ID},
		{domain.FieldProbability, old.ProbabilityID, updated.ProbabilityID, catalog.Probabilities, old.ID},
		{domain.FieldImpact, old.ImpactID, updated.ImpactID, catalog.Impacts, old.ID},
	}
	for _, d := range refDiffs {
		c, changed, err := diffRef(d.field, d.oldID, d.newID, d.set, d.riskID)
		if err != nil {
			return nil, err
		}
		if changed {
			changes = append(changes, c)
		}
	}

	return changes, nil
}

func diffText(field string, oldVal, newVal *string) (riskChange, bool) {
	switch {
	case oldVal == nil && newVal == nil:
		return riskChange{}, false
	case oldVal != nil && newVal != nil && *oldVal == *newVal:
		return riskChange{}, false
	case newVal == nil:
		// Sparse updates never clear a text field, so a nil new value
		// means the field was untouched.
		return riskChange{}, false
	}
	return riskChange{field: field, oldValue: oldVal, newValue: *newVal}, true
}

func diffRef(field string, oldID, newID *int64, set []domain.Lookup, riskID string) (riskChange, bool, error) {
	switch {
	case oldID == nil && newID == nil:
		return riskChange{}, false, nil
	case oldID != nil && newID != nil && *oldID == *newID:
		return riskChange{}, false, nil
	case newID == nil:
		return riskChange{}, false, nil
	}

	newRow, ok := domain.Find(set, *newID)
	if !ok {
		return riskChange{}, false, integrityErr(riskID, field, *newID)
	}

	c := riskChange{field: field, newValue: newRow.Name}
	if oldID != nil {
		oldRow, ok := domain.Find(set, *oldID)
		if !ok {
			return riskChange{}, false, integrityErr(riskID, field, *oldID)
		}
		c.oldValue = ptr(oldRow.Name)
	}

	return c, true, nil
}

func ptr(s string) *string {
	return &s
}
