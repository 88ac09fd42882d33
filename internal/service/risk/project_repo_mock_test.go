package risk

import (
	"context"
	"sync"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	ProjectIDFunc func(ctx context.Context, accountID int64) (string, error)

	calls struct {
		ProjectID []struct {
			Ctx       context.Context
			AccountID int64
		}
	}
	lockProjectID sync.RWMutex
}

func (mock *projectRepoMock) ProjectID(ctx context.Context, accountID int64) (string, error) {
	if mock.ProjectIDFunc == nil {
		panic("projectRepoMock.ProjectIDFunc: method is nil but projectRepo.ProjectID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID int64
	}{Ctx: ctx, AccountID: accountID}
	mock.lockProjectID.Lock()
	mock.calls.ProjectID = append(mock.calls.ProjectID, callInfo)
	mock.lockProjectID.Unlock()
	return mock.ProjectIDFunc(ctx, accountID)
}

func (mock *projectRepoMock) ProjectIDCalls() []struct {
	Ctx       context.Context
	AccountID int64
} {
	mock.lockProjectID.RLock()
	calls := mock.calls.ProjectID
	mock.lockProjectID.RUnlock()
	return calls
}
