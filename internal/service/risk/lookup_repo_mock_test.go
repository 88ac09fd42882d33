package risk

import (
	"context"
	"sync"

	"github.com/kirakulakov/risk-management/internal/domain"
)

var _ lookupRepo = &lookupRepoMock{}

type lookupRepoMock struct {
	FactorsFunc       func(ctx context.Context) ([]domain.Lookup, error)
	TypesFunc         func(ctx context.Context) ([]domain.Lookup, error)
	MethodsFunc       func(ctx context.Context) ([]domain.Lookup, error)
	StatusesFunc      func(ctx context.Context) ([]domain.Lookup, error)
	ProbabilitiesFunc func(ctx context.Context) ([]domain.Lookup, error)
	ImpactsFunc       func(ctx context.Context) ([]domain.Lookup, error)

	FactorByIDFunc      func(ctx context.Context, id int64) (domain.Lookup, error)
	TypeByIDFunc        func(ctx context.Context, id int64) (domain.Lookup, error)
	MethodByIDFunc      func(ctx context.Context, id int64) (domain.Lookup, error)
	StatusByIDFunc      func(ctx context.Context, id int64) (domain.Lookup, error)
	ProbabilityByIDFunc func(ctx context.Context, id int64) (domain.Lookup, error)
	ImpactByIDFunc      func(ctx context.Context, id int64) (domain.Lookup, error)

	calls struct {
		Factors       []struct{ Ctx context.Context }
		Types         []struct{ Ctx context.Context }
		Methods       []struct{ Ctx context.Context }
		Statuses      []struct{ Ctx context.Context }
		Probabilities []struct{ Ctx context.Context }
		Impacts       []struct{ Ctx context.Context }

		FactorByID []struct {
			Ctx context.Context
			ID  int64
		}
		TypeByID []struct {
			Ctx context.Context
			ID  int64
		}
		MethodByID []struct {
			Ctx context.Context
			ID  int64
		}
		StatusByID []struct {
			Ctx context.Context
			ID  int64
		}
		ProbabilityByID []struct {
			Ctx context.Context
			ID  int64
		}
		ImpactByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lock sync.RWMutex
}

func (mock *lookupRepoMock) Factors(ctx context.Context) ([]domain.Lookup, error) {
	if mock.FactorsFunc == nil {
		panic("lookupRepoMock.FactorsFunc: method is nil but lookupRepo.Factors was just called")
	}
	mock.lock.Lock()
	mock.calls.Factors = append(mock.calls.Factors, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lock.Unlock()
	return mock.FactorsFunc(ctx)
}

func (mock *lookupRepoMock) FactorsCalls() []struct{ Ctx context.Context } {
	mock.lock.RLock()
	calls := mock.calls.Factors
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) Types(ctx context.Context) ([]domain.Lookup, error) {
	if mock.TypesFunc == nil {
		panic("lookupRepoMock.TypesFunc: method is nil but lookupRepo.Types was just called")
	}
	mock.lock.Lock()
	mock.calls.Types = append(mock.calls.Types, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lock.Unlock()
	return mock.TypesFunc(ctx)
}

func (mock *lookupRepoMock) TypesCalls() []struct{ Ctx context.Context } {
	mock.lock.RLock()
	calls := mock.calls.Types
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) Methods(ctx context.Context) ([]domain.Lookup, error) {
	if mock.MethodsFunc == nil {
		panic("lookupRepoMock.MethodsFunc: method is nil but lookupRepo.Methods was just called")
	}
	mock.lock.Lock()
	mock.calls.Methods = append(mock.calls.Methods, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lock.Unlock()
	return mock.MethodsFunc(ctx)
}

func (mock *lookupRepoMock) MethodsCalls() []struct{ Ctx context.Context } {
	mock.lock.RLock()
	calls := mock.calls.Methods
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) Statuses(ctx context.Context) ([]domain.Lookup, error) {
	if mock.StatusesFunc == nil {
		panic("lookupRepoMock.StatusesFunc: method is nil but lookupRepo.Statuses was just called")
	}
	mock.lock.Lock()
	mock.calls.Statuses = append(mock.calls.Statuses, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lock.Unlock()
	return mock.StatusesFunc(ctx)
}

func (mock *lookupRepoMock) StatusesCalls() []struct{ Ctx context.Context } {
	mock.lock.RLock()
	calls := mock.calls.Statuses
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) Probabilities(ctx context.Context) ([]domain.Lookup, error) {
	if mock.ProbabilitiesFunc == nil {
		panic("lookupRepoMock.ProbabilitiesFunc: method is nil but lookupRepo.Probabilities was just called")
	}
	mock.lock.Lock()
	mock.calls.Probabilities = append(mock.calls.Probabilities, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lock.Unlock()
	return mock.ProbabilitiesFunc(ctx)
}

func (mock *lookupRepoMock) ProbabilitiesCalls() []struct{ Ctx context.Context } {
	mock.lock.RLock()
	calls := mock.calls.Probabilities
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) Impacts(ctx context.Context) ([]domain.Lookup, error) {
	if mock.ImpactsFunc == nil {
		panic("lookupRepoMock.ImpactsFunc: method is nil but lookupRepo.Impacts was just called")
	}
	mock.lock.Lock()
	mock.calls.Impacts = append(mock.calls.Impacts, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lock.Unlock()
	return mock.ImpactsFunc(ctx)
}

func (mock *lookupRepoMock) ImpactsCalls() []struct{ Ctx context.Context } {
	mock.lock.RLock()
	calls := mock.calls.Impacts
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) FactorByID(ctx context.Context, id int64) (domain.Lookup, error) {
	if mock.FactorByIDFunc == nil {
		panic("lookupRepoMock.FactorByIDFunc: method is nil but lookupRepo.FactorByID was just called")
	}
	mock.lock.Lock()
	mock.calls.FactorByID = append(mock.calls.FactorByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.FactorByIDFunc(ctx, id)
}

func (mock *lookupRepoMock) FactorByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lock.RLock()
	calls := mock.calls.FactorByID
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) TypeByID(ctx context.Context, id int64) (domain.Lookup, error) {
	if mock.TypeByIDFunc == nil {
		panic("lookupRepoMock.TypeByIDFunc: method is nil but lookupRepo.TypeByID was just called")
	}
	mock.lock.Lock()
	mock.calls.TypeByID = append(mock.calls.TypeByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.TypeByIDFunc(ctx, id)
}

func (mock *lookupRepoMock) TypeByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lock.RLock()
	calls := mock.calls.TypeByID
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) MethodByID(ctx context.Context, id int64) (domain.Lookup, error) {
	if mock.MethodByIDFunc == nil {
		panic("lookupRepoMock.MethodByIDFunc: method is nil but lookupRepo.MethodByID was just called")
	}
	mock.lock.Lock()
	mock.calls.MethodByID = append(mock.calls.MethodByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.MethodByIDFunc(ctx, id)
}

func (mock *lookupRepoMock) MethodByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lock.RLock()
	calls := mock.calls.MethodByID
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) StatusByID(ctx context.Context, id int64) (domain.Lookup, error) {
	if mock.StatusByIDFunc == nil {
		panic("lookupRepoMock.StatusByIDFunc: method is nil but lookupRepo.StatusByID was just called")
	}
	mock.lock.Lock()
	mock.calls.StatusByID = append(mock.calls.StatusByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.StatusByIDFunc(ctx, id)
}

func (mock *lookupRepoMock) StatusByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lock.RLock()
	calls := mock.calls.StatusByID
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) ProbabilityByID(ctx context.Context, id int64) (domain.Lookup, error) {
	if mock.ProbabilityByIDFunc == nil {
		panic("lookupRepoMock.ProbabilityByIDFunc: method is nil but lookupRepo.ProbabilityByID was just called")
	}
	mock.lock.Lock()
	mock.calls.ProbabilityByID = append(mock.calls.ProbabilityByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.ProbabilityByIDFunc(ctx, id)
}

func (mock *lookupRepoMock) ProbabilityByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lock.RLock()
	calls := mock.calls.ProbabilityByID
	mock.lock.RUnlock()
	return calls
}

func (mock *lookupRepoMock) ImpactByID(ctx context.Context, id int64) (domain.Lookup, error) {
	if mock.ImpactByIDFunc == nil {
		panic("lookupRepoMock.ImpactByIDFunc: method is nil but lookupRepo.ImpactByID was just called")
	}
	mock.lock.Lock()
	mock.calls.ImpactByID = append(mock.calls.ImpactByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.ImpactByIDFunc(ctx, id)
}

func (mock *lookupRepoMock) ImpactByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lock.RLock()
	calls := mock.calls.ImpactByID
	mock.lock.RUnlock()
	return calls
}
