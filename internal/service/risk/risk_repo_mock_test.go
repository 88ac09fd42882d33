package risk

import (
	"context"
	"sync"

	"github.com/kirakulakov/risk-management/internal/domain"
)

var _ riskRepo = &riskRepoMock{}

type riskRepoMock struct {
	ExistsFunc        func(ctx context.Context, riskID string, accountID int64) (bool, error)
	CreateFunc        func(ctx context.Context, risk domain.Risk) (domain.Risk, error)
	PartialUpdateFunc func(ctx context.Context, riskID string, accountID int64, params domain.RiskUpdateParams) error
	GetByIDFunc       func(ctx context.Context, riskID string, accountID int64) (domain.Risk, error)
	ListFunc          func(ctx context.Context, accountID int64, limit, offset int) ([]domain.Risk, error)
	DeleteFunc        func(ctx context.Context, riskID string, accountID int64) error
	MaxRiskIDFunc     func(ctx context.Context, accountID int64) (string, error)

	calls struct {
		Exists []struct {
			Ctx       context.Context
			RiskID    string
			AccountID int64
		}
		Create []struct {
			Ctx  context.Context
			Risk domain.Risk
		}
		PartialUpdate []struct {
			Ctx       context.Context
			RiskID    string
			AccountID int64
			Params    domain.RiskUpdateParams
		}
		GetByID []struct {
			Ctx       context.Context
			RiskID    string
			AccountID int64
		}
		List []struct {
			Ctx       context.Context
			AccountID int64
			Limit     int
			Offset    int
		}
		Delete []struct {
			Ctx       context.Context
			RiskID    string
			AccountID int64
		}
		MaxRiskID []struct {
			Ctx       context.Context
			AccountID int64
		}
	}
	lockExists        sync.RWMutex
	lockCreate        sync.RWMutex
	lockPartialUpdate sync.RWMutex
	lockGetByID       sync.RWMutex
	lockList          sync.RWMutex
	lockDelete        sync.RWMutex
	lockMaxRiskID     sync.RWMutex
}

func (mock *riskRepoMock) Exists(ctx context.Context, riskID string, accountID int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("riskRepoMock.ExistsFunc: method is nil but riskRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RiskID    string
		AccountID int64
	}{Ctx: ctx, RiskID: riskID, AccountID: accountID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, riskID, accountID)
}

func (mock *riskRepoMock) ExistsCalls() []struct {
	Ctx       context.Context
	RiskID    string
	AccountID int64
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *riskRepoMock) Create(ctx context.Context, risk domain.Risk) (domain.Risk, error) {
	if mock.CreateFunc == nil {
		panic("riskRepoMock.CreateFunc: method is nil but riskRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Risk domain.Risk
	}{Ctx: ctx, Risk: risk}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, risk)
}

func (mock *riskRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Risk domain.Risk
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *riskRepoMock) PartialUpdate(ctx context.Context, riskID string, accountID int64, params domain.RiskUpdateParams) error {
	if mock.PartialUpdateFunc == nil {
		panic("riskRepoMock.PartialUpdateFunc: method is nil but riskRepo.PartialUpdate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RiskID    string
		AccountID int64
		Params    domain.RiskUpdateParams
	}{Ctx: ctx, RiskID: riskID, AccountID: accountID, Params: params}
	mock.lockPartialUpdate.Lock()
	mock.calls.PartialUpdate = append(mock.calls.PartialUpdate, callInfo)
	mock.lockPartialUpdate.Unlock()
	return mock.PartialUpdateFunc(ctx, riskID, accountID, params)
}

func (mock *riskRepoMock) PartialUpdateCalls() []struct {
	Ctx       context.Context
	RiskID    string
	AccountID int64
	Params    domain.RiskUpdateParams
} {
	mock.lockPartialUpdate.RLock()
	calls := mock.calls.PartialUpdate
	mock.lockPartialUpdate.RUnlock()
	return calls
}

func (mock *riskRepoMock) GetByID(ctx context.Context, riskID string, accountID int64) (domain.Risk, error) {
	if mock.GetByIDFunc == nil {
		panic("riskRepoMock.GetByIDFunc: method is nil but riskRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RiskID    string
		AccountID int64
	}{Ctx: ctx, RiskID: riskID, AccountID: accountID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, riskID, accountID)
}

func (mock *riskRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	RiskID    string
	AccountID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *riskRepoMock) List(ctx context.Context, accountID int64, limit, offset int) ([]domain.Risk, error) {
	if mock.ListFunc == nil {
		panic("riskRepoMock.ListFunc: method is nil but riskRepo.List was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID int64
		Limit     int
		Offset    int
	}{Ctx: ctx, AccountID: accountID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, accountID, limit, offset)
}

func (mock *riskRepoMock) ListCalls() []struct {
	Ctx       context.Context
	AccountID int64
	Limit     int
	Offset    int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *riskRepoMock) Delete(ctx context.Context, riskID string, accountID int64) error {
	if mock.DeleteFunc == nil {
		panic("riskRepoMock.DeleteFunc: method is nil but riskRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RiskID    string
		AccountID int64
	}{Ctx: ctx, RiskID: riskID, AccountID: accountID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, riskID, accountID)
}

func (mock *riskRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	RiskID    string
	AccountID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *riskRepoMock) MaxRiskID(ctx context.Context, accountID int64) (string, error) {
	if mock.MaxRiskIDFunc == nil {
		panic("riskRepoMock.MaxRiskIDFunc: method is nil but riskRepo.MaxRiskID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID int64
	}{Ctx: ctx, AccountID: accountID}
	mock.lockMaxRiskID.Lock()
	mock.calls.MaxRiskID = append(mock.calls.MaxRiskID, callInfo)
	mock.lockMaxRiskID.Unlock()
	return mock.MaxRiskIDFunc(ctx, accountID)
}

func (mock *riskRepoMock) MaxRiskIDCalls() []struct {
	Ctx       context.Context
	AccountID int64
} {
	mock.lockMaxRiskID.RLock()
	calls := mock.calls.MaxRiskID
	mock.lockMaxRiskID.RUnlock()
	return calls
}
