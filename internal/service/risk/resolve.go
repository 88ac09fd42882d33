package risk

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kirakulakov/risk-management/internal/domain"
)

// loadCatalog fetches all six lookup sets concurrently. The sets are
// independent read-only queries, so one failed fetch cancels the rest.
func (s *Service) loadCatalog(ctx context.Context) (domain.Catalog, error) {
	var catalog domain.Catalog

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		catalog.Factors, err = s.lookups.Factors(gCtx)
		return err
	})
	g.Go(func() (err error) {
		catalog.Types, err = s.lookups.Types(gCtx)
		return err
	})
	g.Go(func() (err error) {
		catalog.Methods, err = s.lookups.Methods(gCtx)
		return err
	})
	g.Go(func() (err error) {
		catalog.Statuses, err = s.lookups.Statuses(gCtx)
		return err
	})
	g.Go(func() (err error) {
		catalog.Probabilities, err = s.lookups.Probabilities(gCtx)
		return err
	})
	g.Go(func() (err error) {
		catalog.Impacts, err = s.lookups.Impacts(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Catalog{}, fmt.Errorf("load lookup catalog: %w", err)
	}

	return catalog, nil
}

// resolveRisk joins one risk against a catalog snapshot. A required
// reference missing from the catalog means the stored data and the seeded
// reference rows disagree, which is integrity corruption, not bad input.
func resolveRisk(r domain.Risk, catalog domain.Catalog) (RiskView, error) {
	view := RiskView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	factor, ok := domain.Find(catalog.Factors, r.FactorID)
	if !ok {
		return RiskView{}, integrityErr(r.ID, "factor", r.FactorID)
	}
	view.Factor = lookupView(factor)

	typ, ok := domain.Find(catalog.Types, r.TypeID)
	if !ok {
		return RiskView{}, integrityErr(r.ID, "type", r.TypeID)
	}
	view.Type = lookupView(typ)

	method, ok := domain.Find(catalog.Methods, r.MethodID)
	if !ok {
		return RiskView{}, integrityErr(r.ID, "method", r.MethodID)
	}
	view.Method = lookupView(method)

	status, ok := domain.Find(catalog.Statuses, r.StatusID)
	if !ok {
		return RiskView{}, integrityErr(r.ID, "status", r.StatusID)
	}
	view.Status = lookupView(status)

	if r.ProbabilityID != nil {
		prob, ok := domain.Find(catalog.Probabilities, *r.ProbabilityID)
		if !ok {
			return RiskView{}, integrityErr(r.ID, "probability", *r.ProbabilityID)
		}
		v := scaleView(prob)
		view.Probability = &v
	}
	if r.ImpactID != nil {
		impact, ok := domain.Find(catalog.Impacts, *r.ImpactID)
		if !ok {
			return RiskView{}, integrityErr(r.ID, "impact", *r.ImpactID)
		}
		v := scaleView(impact)
		view.Impact = &v
	}

	return view, nil
}

// resolveRisks resolves a whole page against one shared catalog snapshot.
func resolveRisks(risks []domain.Risk, catalog domain.Catalog) ([]RiskView, error) {
	views := make([]RiskView, 0, len(risks))
	for _, r := range risks {
		view, err := resolveRisk(r, catalog)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func integrityErr(riskID, field string, id int64) error {
	return fmt.Errorf("risk %s references unknown %s %d: %w", riskID, field, id, domain.ErrDataIntegrity)
}
