package risk

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kirakulakov/risk-management/internal/domain"
	"github.com/kirakulakov/risk-management/pkg/ctxutil"
)

// sequenceDigits is the width of the numeric suffix in a risk id.
const sequenceDigits = 4

// NextSequenceID computes the next risk identifier for the account as
// {project_id}-{NNNN}. The sequence is the numeric value of the last four
// characters of the account's current maximum risk id, plus one; with no
// risks yet it starts at 1. Ids that do not end in four digits make the
// suffix parse fail, which surfaces as a data integrity error instead of
// a silently wrong sequence.
func (s *Service) NextSequenceID(ctx context.Context) (string, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	projectID, err := s.projects.ProjectID(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("get project id: %w", err)
	}

	maxID, err := s.risks.MaxRiskID(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("get max risk id: %w", err)
	}

	seq := 1
	if maxID != "" {
		if len(maxID) < sequenceDigits {
			return "", fmt.Errorf("risk id %q has no %d-digit suffix: %w", maxID, sequenceDigits, domain.ErrDataIntegrity)
		}
		suffix := maxID[len(maxID)-sequenceDigits:]
		n, parseErr := strconv.Atoi(suffix)
		if parseErr != nil {
			return "", fmt.Errorf("risk id %q has non-numeric suffix %q: %w", maxID, suffix, domain.ErrDataIntegrity)
		}
		seq = n + 1
	}

	return fmt.Sprintf("%s-%04d", projectID, seq), nil
}
