package mocks

import (
	context "context"
	time "time"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	model "github.com/dtroode/marketplace-auth/internal/model"
)

// UserStore is a mock type for the UserStore type
type UserStore struct {
	mock.Mock
}

// GetByEmail provides a mock function with given fields: ctx, tenantID, email
func (_m *UserStore) GetByEmail(ctx context.Context, tenantID uuid.NullUUID, email string) (model.User, error) {
	ret := _m.Called(ctx, tenantID, email)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.NullUUID, string) (model.User, error)); ok {
		return rf(ctx, tenantID, email)
	}
	return ret.Get(0).(model.User), ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (model.User, error)); ok {
		return rf(ctx, id)
	}
	return ret.Get(0).(model.User), ret.Error(1)
}

// Lock provides a mock function with given fields: ctx, id, until
func (_m *UserStore) Lock(ctx context.Context, id uuid.UUID, until time.Time) error {
	ret := _m.Called(ctx, id, until)
	return ret.Error(0)
}

// NewUserStore creates a new instance of UserStore. It also registers a cleanup function to assert the mocks expectations.
func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
