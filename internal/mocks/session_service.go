package mocks

import (
	context "context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	model "github.com/dtroode/marketplace-auth/internal/model"
)

// SessionService is a mock type for the SessionService type
type SessionService struct {
	mock.Mock
}

// Login provides a mock function with given fields: ctx, creds
func (_m *SessionService) Login(ctx context.Context, creds model.Credentials) (model.TokenPair, error) {
	ret := _m.Called(ctx, creds)
	return ret.Get(0).(model.TokenPair), ret.Error(1)
}

// Refresh provides a mock function with given fields: ctx, code
func (_m *SessionService) Refresh(ctx context.Context, code string) (model.TokenPair, error) {
	ret := _m.Called(ctx, code)
	return ret.Get(0).(model.TokenPair), ret.Error(1)
}

// Logout provides a mock function with given fields: ctx, code, everywhere
func (_m *SessionService) Logout(ctx context.Context, code string, everywhere bool) error {
	ret := _m.Called(ctx, code, everywhere)
	return ret.Error(0)
}

// RevokeAllSessions provides a mock function with given fields: ctx, principal
func (_m *SessionService) RevokeAllSessions(ctx context.Context, principal model.Principal) (int64, error) {
	ret := _m.Called(ctx, principal)
	return ret.Get(0).(int64), ret.Error(1)
}

// RevokeUserSessions provides a mock function with given fields: ctx, admin, target
func (_m *SessionService) RevokeUserSessions(ctx context.Context, admin model.Principal, target uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, admin, target)
	return ret.Get(0).(int64), ret.Error(1)
}

// NewSessionService creates a new instance of SessionService. It also registers a cleanup function to assert the mocks expectations.
func NewSessionService(t testingT) *SessionService {
	m := &SessionService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
