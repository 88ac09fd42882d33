// Package risk implements the risk register: creation with sequential
// per-project identifiers, sparse partial updates with a field-level audit
// trail, and assembly of responses with denormalized lookup objects.
package risk

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kirakulakov/risk-management/internal/domain"
)

type riskRepo interface {
	Exists(ctx context.Context, riskID string, accountID int64) (bool, error)
	Create(ctx context.Context, risk domain.Risk) (domain.Risk, error)
	PartialUpdate(ctx context.Context, riskID string, accountID int64, params domain.RiskUpdateParams) error
	GetByID(ctx context.Context, riskID string, accountID int64) (domain.Risk, error)
	List(ctx context.Context, accountID int64, limit, offset int) ([]domain.Risk, error)
	Delete(ctx context.Context, riskID string, accountID int64) error
	MaxRiskID(ctx context.Context, accountID int64) (string, error)
}

type historyRepo interface {
	Append(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error)
	LatestID(ctx context.Context, riskID string, accountID int64) (*int64, error)
	ListByRisk(ctx context.Context, riskID string, accountID int64, limit, offset int) ([]domain.HistoryEntry, error)
	CountByRisk(ctx context.Context, riskID string, accountID int64) (int, error)
	DeleteByRisk(ctx context.Context, riskID string, accountID int64) error
}

type lookupRepo interface {
	Factors(ctx context.Context) ([]domain.Lookup, error)
	Types(ctx context.Context) ([]domain.Lookup, error)
	Methods(ctx context.Context) ([]domain.Lookup, error)
	Statuses(ctx context.Context) ([]domain.Lookup, error)
	Probabilities(ctx context.Context) ([]domain.Lookup, error)
	Impacts(ctx context.Context) ([]domain.Lookup, error)

	// Point lookups, used at creation time where fetching the six full
	// sets would be wasted work.
	FactorByID(ctx context.Context, id int64) (domain.Lookup, error)
	TypeByID(ctx context.Context, id int64) (domain.Lookup, error)
	MethodByID(ctx context.Context, id int64) (domain.Lookup, error)
	StatusByID(ctx context.Context, id int64) (domain.Lookup, error)
	ProbabilityByID(ctx context.Context, id int64) (domain.Lookup, error)
	ImpactByID(ctx context.Context, id int64) (domain.Lookup, error)
}

type projectRepo interface {
	ProjectID(ctx context.Context, accountID int64) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides risk register operations scoped to the authenticated
// account.
type Service struct {
	risks    riskRepo
	history  historyRepo
	lookups  lookupRepo
	projects projectRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Risk service.
func NewService(
	log *slog.Logger,
	risks riskRepo,
	history historyRepo,
	lookups lookupRepo,
	projects projectRepo,
	tx txManager,
) *Service {
	return &Service{
		risks:    risks,
		history:  history,
		lookups:  lookups,
		projects: projects,
		tx:       tx,
		log:      log.With("service", "risk"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
