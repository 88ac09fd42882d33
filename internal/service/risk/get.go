package risk

import (
	"context"
	"fmt"
	"strings"

	"github.com/kirakulakov/risk-management/internal/domain"
	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// GetRisk returns one risk with all references resolved.
func (s *Service) GetRisk(ctx context.Context, riskID string) (RiskView, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return RiskView{}, domain.ErrUnauthorized
	}
	if strings.TrimSpace(riskID) == "" {
		return RiskView{}, domain.NewValidationError("id", "required")
	}

	r, err := s.risks.GetByID(ctx, strings.TrimSpace(riskID), accountID)
	if err != nil {
		return RiskView{}, fmt.Errorf("get risk: %w", err)
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return RiskView{}, err
	}

	return resolveRisk(r, catalog)
}
