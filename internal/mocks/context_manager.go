package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	model "github.com/dtroode/marketplace-auth/internal/model"
)

// ContextManager is a mock type for the ContextManager type
type ContextManager struct {
	mock.Mock
}

// SetPrincipalToContext provides a mock function with given fields: ctx, principal
func (_m *ContextManager) SetPrincipalToContext(ctx context.Context, principal model.Principal) context.Context {
	ret := _m.Called(ctx, principal)

	if rf, ok := ret.Get(0).(func(context.Context, model.Principal) context.Context); ok {
		return rf(ctx, principal)
	}
	return ret.Get(0).(context.Context)
}

// GetPrincipalFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetPrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	ret := _m.Called(ctx)
	return ret.Get(0).(model.Principal), ret.Bool(1)
}

// GetPermissionsFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetPermissionsFromContext(ctx context.Context) (model.PermissionSet, bool) {
	ret := _m.Called(ctx)
	return ret.Get(0).(model.PermissionSet), ret.Bool(1)
}

// NewContextManager creates a new instance of ContextManager. It also registers a cleanup function to assert the mocks expectations.
func NewContextManager(t testingT) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
