package risk

import (
	"context"
	"fmt"

	"github.com/kirakulakov/risk-management/internal/domain"
	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// ListRisks returns one page of the account's risks, newest first, with
// every reference resolved against a single catalog snapshot.
func (s *Service) ListRisks(ctx context.Context, input ListRisksInput) (ListRisksResult, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return ListRisksResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ListRisksResult{}, err
	}

	risks, err := s.risks.List(ctx, accountID, input.Limit, input.Offset)
	if err != nil {
		return ListRisksResult{}, fmt.Errorf("list risks: %w", err)
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return ListRisksResult{}, err
	}

	views, err := resolveRisks(risks, catalog)
	if err != nil {
		return ListRisksResult{}, err
	}

	return ListRisksResult{
		Risks:  views,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
