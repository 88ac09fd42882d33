package risk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kirakulakov/risk-management/internal/domain"
	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// CreateRisk creates a new risk for the authenticated account. The
// existence check and the insert are two separate statements; two
// concurrent creates with the same id can both pass the check, in which
// case the composite primary key rejects the loser with a conflict.
// Creation writes no history: the audit trail records changes, and a new
// risk has none yet.
func (s *Service) CreateRisk(ctx context.Context, input CreateRiskInput) (RiskView, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return RiskView{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return RiskView{}, err
	}

	riskID := strings.TrimSpace(input.ID)

	taken, err := s.risks.Exists(ctx, riskID, accountID)
	if err != nil {
		return RiskView{}, fmt.Errorf("check risk exists: %w", err)
	}
	if taken {
		return RiskView{}, fmt.Errorf("risk %s: %w", riskID, domain.ErrAlreadyExists)
	}

	// Resolve the supplied references up front. An unknown id here is bad
	// input, not data corruption, so it surfaces as a validation error.
	refs, err := s.resolveCreateRefs(ctx, input)
	if err != nil {
		return RiskView{}, err
	}

	created, err := s.risks.Create(ctx, domain.Risk{
		ID:            riskID,
		AccountID:     accountID,
		Name:          strings.TrimSpace(input.Name),
		Description:   trimOrNil(input.Description),
		Comment:       trimOrNil(input.Comment),
		FactorID:      input.FactorID,
		TypeID:        input.TypeID,
		MethodID:      input.MethodID,
		StatusID:      domain.DefaultStatusID,
		ProbabilityID: input.ProbabilityID,
		ImpactID:      input.ImpactID,
	})
	if err != nil {
		return RiskView{}, fmt.Errorf("create risk: %w", err)
	}

	s.log.InfoContext(ctx, "risk created",
		slog.Int64("account_id", accountID),
		slog.String("risk_id", created.ID),
	)

	view := RiskView{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
		Comment:     created.Comment,
		Factor:      lookupView(refs.factor),
		Type:        lookupView(refs.typ),
		Method:      lookupView(refs.method),
		Status:      lookupView(refs.status),
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	}
	if refs.probability != nil {
		v := scaleView(*refs.probability)
		view.Probability = &v
	}
	if refs.impact != nil {
		v := scaleView(*refs.impact)
		view.Impact = &v
	}

	return view, nil
}

type createRefs struct {
	factor      domain.Lookup
	typ         domain.Lookup
	method      domain.Lookup
	status      domain.Lookup
	probability *domain.Lookup
	impact      *domain.Lookup
}

// resolveCreateRefs fetches the handful of referenced lookup rows one by
// one rather than pulling in the whole catalog.
func (s *Service) resolveCreateRefs(ctx context.Context, input CreateRiskInput) (createRefs, error) {
	var refs createRefs
	var err error

	if refs.factor, err = s.lookups.FactorByID(ctx, input.FactorID); err != nil {
		return createRefs{}, refErr("factor_id", err)
	}
	if refs.typ, err = s.lookups.TypeByID(ctx, input.TypeID); err != nil {
		return createRefs{}, refErr("type_id", err)
	}
	if refs.method, err = s.lookups.MethodByID(ctx, input.MethodID); err != nil {
		return createRefs{}, refErr("method_id", err)
	}
	if refs.status, err = s.lookups.StatusByID(ctx, domain.DefaultStatusID); err != nil {
		// The default status is seed data; its absence is corruption.
		return createRefs{}, fmt.Errorf("default status %d missing: %w", domain.DefaultStatusID, domain.ErrDataIntegrity)
	}
	if input.ProbabilityID != nil {
		prob, err := s.lookups.ProbabilityByID(ctx, *input.ProbabilityID)
		if err != nil {
			return createRefs{}, refErr("probability_id", err)
		}
		refs.probability = &prob
	}
	if input.ImpactID != nil {
		impact, err := s.lookups.ImpactByID(ctx, *input.ImpactID)
		if err != nil {
			return createRefs{}, refErr("impact_id", err)
		}
		refs.impact = &impact
	}

	return refs, nil
}

func refErr(field string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError(field, "unknown reference")
	}
	return fmt.Errorf("resolve %s: %w", field, err)
}
