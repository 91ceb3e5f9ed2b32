package mocks

import (
	context "context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// LockoutCounter is a mock type for the LockoutCounter type
type LockoutCounter struct {
	mock.Mock
}

// RecordFailure provides a mock function with given fields: ctx, userID
func (_m *LockoutCounter) RecordFailure(ctx context.Context, userID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, userID)
	return ret.Bool(0), ret.Error(1)
}

// Reset provides a mock function with given fields: ctx, userID
func (_m *LockoutCounter) Reset(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)
	return ret.Error(0)
}

// NewLockoutCounter creates a new instance of LockoutCounter. It also registers a cleanup function to assert the mocks expectations.
func NewLockoutCounter(t testingT) *LockoutCounter {
	m := &LockoutCounter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
