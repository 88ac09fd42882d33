package account

import "sync"

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(accountID int64) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			AccountID int64
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(accountID int64) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		AccountID int64
	}{AccountID: accountID}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(accountID)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	AccountID int64
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}
