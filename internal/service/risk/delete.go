package risk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kirakulakov/risk-management/internal/domain"
	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// DeleteRisk removes a risk together with its entire audit trail in one
// transaction, so no orphaned history entries can remain. Deleting a risk
// that does not exist reports not found.
func (s *Service) DeleteRisk(ctx context.Context, input DeleteRiskInput) error {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	riskID := strings.TrimSpace(input.ID)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.history.DeleteByRisk(txCtx, riskID, accountID); err != nil {
			return fmt.Errorf("delete risk history: %w", err)
		}
		if err := s.risks.Delete(txCtx, riskID, accountID); err != nil {
			return fmt.Errorf("delete risk: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "risk deleted",
		slog.Int64("account_id", accountID),
		slog.String("risk_id", riskID),
	)

	return nil
}
