package account

import (
	"context"
	"sync"

	"github.com/kirakulakov/risk-management/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	CreateFunc         func(ctx context.Context, acc domain.Account) (domain.Account, error)
	ByEmailFunc        func(ctx context.Context, email string) (domain.Account, error)
	ByIDFunc           func(ctx context.Context, id int64) (domain.Account, error)
	UpdateFunc         func(ctx context.Context, accountID int64, params domain.AccountUpdateParams) error
	UpdatePasswordFunc func(ctx context.Context, accountID int64, passwordHash string) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Acc domain.Account
		}
		ByEmail []struct {
			Ctx   context.Context
			Email string
		}
		ByID []struct {
			Ctx context.Context
			ID  int64
		}
		Update []struct {
			Ctx       context.Context
			AccountID int64
			Params    domain.AccountUpdateParams
		}
		UpdatePassword []struct {
			Ctx          context.Context
			AccountID    int64
			PasswordHash string
		}
	}
	lockCreate         sync.RWMutex
	lockByEmail        sync.RWMutex
	lockByID           sync.RWMutex
	lockUpdate         sync.RWMutex
	lockUpdatePassword sync.RWMutex
}

func (mock *accountRepoMock) Create(ctx context.Context, acc domain.Account) (domain.Account, error) {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Acc domain.Account
	}{Ctx: ctx, Acc: acc}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, acc)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Acc domain.Account
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) ByEmail(ctx context.Context, email string) (domain.Account, error) {
	if mock.ByEmailFunc == nil {
		panic("accountRepoMock.ByEmailFunc: method is nil but accountRepo.ByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockByEmail.Lock()
	mock.calls.ByEmail = append(mock.calls.ByEmail, callInfo)
	mock.lockByEmail.Unlock()
	return mock.ByEmailFunc(ctx, email)
}

func (mock *accountRepoMock) ByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockByEmail.RLock()
	calls := mock.calls.ByEmail
	mock.lockByEmail.RUnlock()
	return calls
}

func (mock *accountRepoMock) ByID(ctx context.Context, id int64) (domain.Account, error) {
	if mock.ByIDFunc == nil {
		panic("accountRepoMock.ByIDFunc: method is nil but accountRepo.ByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockByID.Lock()
	mock.calls.ByID = append(mock.calls.ByID, callInfo)
	mock.lockByID.Unlock()
	return mock.ByIDFunc(ctx, id)
}

func (mock *accountRepoMock) ByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockByID.RLock()
	calls := mock.calls.ByID
	mock.lockByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) Update(ctx context.Context, accountID int64, params domain.AccountUpdateParams) error {
	if mock.UpdateFunc == nil {
		panic("accountRepoMock.UpdateFunc: method is nil but accountRepo.Update was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID int64
		Params    domain.AccountUpdateParams
	}{Ctx: ctx, AccountID: accountID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, accountID, params)
}

func (mock *accountRepoMock) UpdateCalls() []struct {
	Ctx       context.Context
	AccountID int64
	Params    domain.AccountUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *accountRepoMock) UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("accountRepoMock.UpdatePasswordFunc: method is nil but accountRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		AccountID    int64
		PasswordHash string
	}{Ctx: ctx, AccountID: accountID, PasswordHash: passwordHash}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, accountID, passwordHash)
}

func (mock *accountRepoMock) UpdatePasswordCalls() []struct {
	Ctx          context.Context
	AccountID    int64
	PasswordHash string
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
