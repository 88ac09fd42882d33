package risk

import (
	"context"
	"fmt"
	"strings"

	"github.com/kirakulakov/risk-management/internal/domain"
	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// GetHistory returns one page of a risk's audit trail, most recent entry
// first. Asking for the history of a missing risk reports not found
// rather than an empty page.
func (s *Service) GetHistory(ctx context.Context, input HistoryInput) (HistoryResult, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return HistoryResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return HistoryResult{}, err
	}

	riskID := strings.TrimSpace(input.RiskID)

	exists, err := s.risks.Exists(ctx, riskID, accountID)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("check risk exists: %w", err)
	}
	if !exists {
		return HistoryResult{}, fmt.Errorf("risk %s: %w", riskID, domain.ErrNotFound)
	}

	entries, err := s.history.ListByRisk(ctx, riskID, accountID, input.Limit, input.Offset)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("list history: %w", err)
	}
	total, err := s.history.CountByRisk(ctx, riskID, accountID)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("count history: %w", err)
	}

	views := make([]HistoryEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, historyView(e))
	}

	return HistoryResult{
		Entries: views,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}
