package risk

import (
	"context"
	"sync"

	"github.com/kirakulakov/risk-management/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	AppendFunc       func(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error)
	LatestIDFunc     func(ctx context.Context, riskID string, accountID int64) (*int64, error)
	ListByRiskFunc   func(ctx context.Context, riskID string, accountID int64, limit, offset int) ([]domain.HistoryEntry, error)
	CountByRiskFunc  func(ctx context.Context, riskID string, accountID int64) (int, error)
	DeleteByRiskFunc func(ctx context.Context, riskID string, accountID int64) error

	calls struct {
		Append []struct {
			Ctx   context.Context
			Entry domain.HistoryEntry
		}
		LatestID []struct {
			Ctx       context.Context
			RiskID    string
			AccountID int64
		}
		ListByRisk []struct {
			Ctx       context.Context
			RiskID    string
			AccountID int64
			Limit     int
			Offset    int
		}
		CountByRisk []struct {
			Ctx       context.Context
			RiskID    string
			AccountID int64
		}
		DeleteByRisk []struct {
			Ctx       context.Context
			RiskID    string
			AccountID int64
		}
	}
	lockAppend       sync.RWMutex
	lockLatestID     sync.RWMutex
	lockListByRisk   sync.RWMutex
	lockCountByRisk  sync.RWMutex
	lockDeleteByRisk sync.RWMutex
}

func (mock *historyRepoMock) Append(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	if mock.AppendFunc == nil {
		panic("historyRepoMock.AppendFunc: method is nil but historyRepo.Append was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.HistoryEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, entry)
}

func (mock *historyRepoMock) AppendCalls() []struct {
	Ctx   context.Context
	Entry domain.HistoryEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *historyRepoMock) LatestID(ctx context.Context, riskID string, accountID int64) (*int64, error) {
	if mock.LatestIDFunc == nil {
		panic("historyRepoMock.LatestIDFunc: method is nil but historyRepo.LatestID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RiskID    string
		AccountID int64
	}{Ctx: ctx, RiskID: riskID, AccountID: accountID}
	mock.lockLatestID.Lock()
	mock.calls.LatestID = append(mock.calls.LatestID, callInfo)
	mock.lockLatestID.Unlock()
	return mock.LatestIDFunc(ctx, riskID, accountID)
}

func (mock *historyRepoMock) LatestIDCalls() []struct {
	Ctx       context.Context
	RiskID    string
	AccountID int64
} {
	mock.lockLatestID.RLock()
	calls := mock.calls.LatestID
	mock.lockLatestID.RUnlock()
	return calls
}

func (mock *historyRepoMock) ListByRisk(ctx context.Context, riskID string, accountID int64, limit, offset int) ([]domain.HistoryEntry, error) {
	if mock.ListByRiskFunc == nil {
		panic("historyRepoMock.ListByRiskFunc: method is nil but historyRepo.ListByRisk was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RiskID    string
		AccountID int64
		Limit     int
		Offset    int
	}{Ctx: ctx, RiskID: riskID, AccountID: accountID, Limit: limit, Offset: offset}
	mock.lockListByRisk.Lock()
	mock.calls.ListByRisk = append(mock.calls.ListByRisk, callInfo)
	mock.lockListByRisk.Unlock()
	return mock.ListByRiskFunc(ctx, riskID, accountID, limit, offset)
}

func (mock *historyRepoMock) ListByRiskCalls() []struct {
	Ctx       context.Context
	RiskID    string
	AccountID int64
	Limit     int
	Offset    int
} {
	mock.lockListByRisk.RLock()
	calls := mock.calls.ListByRisk
	mock.lockListByRisk.RUnlock()
	return calls
}

func (mock *historyRepoMock) CountByRisk(ctx context.Context, riskID string, accountID int64) (int, error) {
	if mock.CountByRiskFunc == nil {
		panic("historyRepoMock.CountByRiskFunc: method is nil but historyRepo.CountByRisk was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RiskID    string
		AccountID int64
	}{Ctx: ctx, RiskID: riskID, AccountID: accountID}
	mock.lockCountByRisk.Lock()
	mock.calls.CountByRisk = append(mock.calls.CountByRisk, callInfo)
	mock.lockCountByRisk.Unlock()
	return mock.CountByRiskFunc(ctx, riskID, accountID)
}

func (mock *historyRepoMock) CountByRiskCalls() []struct {
	Ctx       context.Context
	RiskID    string
	AccountID int64
} {
	mock.lockCountByRisk.RLock()
	calls := mock.calls.CountByRisk
	mock.lockCountByRisk.RUnlock()
	return calls
}

func (mock *historyRepoMock) DeleteByRisk(ctx context.Context, riskID string, accountID int64) error {
	if mock.DeleteByRiskFunc == nil {
		panic("historyRepoMock.DeleteByRiskFunc: method is nil but historyRepo.DeleteByRisk was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RiskID    string
		AccountID int64
	}{Ctx: ctx, RiskID: riskID, AccountID: accountID}
	mock.lockDeleteByRisk.Lock()
	mock.calls.DeleteByRisk = append(mock.calls.DeleteByRisk, callInfo)
	mock.lockDeleteByRisk.Unlock()
	return mock.DeleteByRiskFunc(ctx, riskID, accountID)
}

func (mock *historyRepoMock) DeleteByRiskCalls() []struct {
	Ctx       context.Context
	RiskID    string
	AccountID int64
} {
	mock.lockDeleteByRisk.RLock()
	calls := mock.calls.DeleteByRisk
	mock.lockDeleteByRisk.RUnlock()
	return calls
}
