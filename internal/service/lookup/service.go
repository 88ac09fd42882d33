// Package lookup serves the read-only taxonomy catalogs that classify
// risks: factors, types, management methods, statuses and the two
// weighted scales, probability and impact.
package lookup

import (
	"context"
	"log/slog"

	"github.com/kirakulakov/risk-management/internal/domain"
)

type lookupRepo interface {
	Factors(ctx context.Context) ([]domain.Lookup, error)
	Types(ctx context.Context) ([]domain.Lookup, error)
	Methods(ctx context.Context) ([]domain.Lookup, error)
	Statuses(ctx context.Context) ([]domain.Lookup, error)
	Probabilities(ctx context.Context) ([]domain.Lookup, error)
	Impacts(ctx context.Context) ([]domain.Lookup, error)
}

// Service exposes the lookup catalogs to the transport layer.
type Service struct {
	lookups lookupRepo
	log     *slog.Logger
}

// NewService creates a lookup Service.
func NewService(log *slog.Logger, lookups lookupRepo) *Service {
	return &Service{
		lookups: lookups,
		log:     log.With("service", "lookup"),
	}
}

// View is the public shape of one taxonomy entry. Value is set only for
// the weighted scales.
type View struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value *int   `json:"value,omitempty"`
}

// Factors returns all risk factors.
func (s *Service) Factors(ctx context.Context) ([]View, error) {
	return s.views(s.lookups.Factors(ctx))
}

// Types returns all risk types.
func (s *Service) Types(ctx context.Context) ([]View, error) {
	return s.views(s.lookups.Types(ctx))
}

// Methods returns all risk management methods.
func (s *Service) Methods(ctx context.Context) ([]View, error) {
	return s.views(s.lookups.Methods(ctx))
}

// Statuses returns all risk statuses.
func (s *Service) Statuses(ctx context.Context) ([]View, error) {
	return s.views(s.lookups.Statuses(ctx))
}

// Probabilities returns the probability scale.
func (s *Service) Probabilities(ctx context.Context) ([]View, error) {
	return s.views(s.lookups.Probabilities(ctx))
}

// Impacts returns the impact scale.
func (s *Service) Impacts(ctx context.Context) ([]View, error) {
	return s.views(s.lookups.Impacts(ctx))
}

func (s *Service) views(rows []domain.Lookup, err error) ([]View, error) {
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(rows))
	for _, l := range rows {
		views = append(views, View{ID: l.ID, Name: l.Name, Value: l.Value})
	}
	return views, nil
}
