package mocks

import (
	context "context"

	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// PermissionStore is a mock type for the PermissionStore type
type PermissionStore struct {
	mock.Mock
}

// RolePermissions provides a mock function with given fields: ctx, roles
func (_m *PermissionStore) RolePermissions(ctx context.Context, roles []string) ([]string, error) {
	ret := _m.Called(ctx, roles)

	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

// Grants provides a mock function with given fields: ctx, tenantID, userID
func (_m *PermissionStore) Grants(ctx context.Context, tenantID uuid.NullUUID, userID uuid.UUID) ([]string, error) {
	ret := _m.Called(ctx, tenantID, userID)

	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

// NewPermissionStore creates a new instance of PermissionStore. It also registers a cleanup function to assert the mocks expectations.
func NewPermissionStore(t testingT) *PermissionStore {
	m := &PermissionStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
