package mocks

import (
	context "context"
	time "time"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	model "github.com/dtroode/marketplace-auth/internal/model"
)

// RefreshTokenStore is a mock type for the RefreshTokenStore type
type RefreshTokenStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, token
func (_m *RefreshTokenStore) Create(ctx context.Context, token model.RefreshToken) error {
	ret := _m.Called(ctx, token)
	return ret.Error(0)
}

// Rotate provides a mock function with given fields: ctx, presentedHash, successor, now, prepare
func (_m *RefreshTokenStore) Rotate(ctx context.Context, presentedHash []byte, successor model.RefreshToken, now time.Time, prepare model.RotatePrepare) (model.RefreshToken, error) {
	ret := _m.Called(ctx, presentedHash, successor, now, prepare)
	return ret.Get(0).(model.RefreshToken), ret.Error(1)
}

// RevokeByHash provides a mock function with given fields: ctx, tokenHash, revocation
func (_m *RefreshTokenStore) RevokeByHash(ctx context.Context, tokenHash []byte, revocation model.Revocation) (uuid.UUID, error) {
	ret := _m.Called(ctx, tokenHash, revocation)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

// RevokeAllByUser provides a mock function with given fields: ctx, userID, revocation
func (_m *RefreshTokenStore) RevokeAllByUser(ctx context.Context, userID uuid.UUID, revocation model.Revocation) (int64, error) {
	ret := _m.Called(ctx, userID, revocation)
	return ret.Get(0).(int64), ret.Error(1)
}

// NewRefreshTokenStore creates a new instance of RefreshTokenStore. It also registers a cleanup function to assert the mocks expectations.
func NewRefreshTokenStore(t testingT) *RefreshTokenStore {
	m := &RefreshTokenStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
