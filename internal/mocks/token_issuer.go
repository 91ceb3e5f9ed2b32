package mocks

import (
	time "time"

	mock "github.com/stretchr/testify/mock"

	model "github.com/dtroode/marketplace-auth/internal/model"
)

// TokenIssuer is a mock type for the TokenIssuer type
type TokenIssuer struct {
	mock.Mock
}

// IssueAccessToken provides a mock function with given fields: principal
func (_m *TokenIssuer) IssueAccessToken(principal model.Principal) (string, time.Time, error) {
	ret := _m.Called(principal)
	return ret.String(0), ret.Get(1).(time.Time), ret.Error(2)
}

// ParseAccessToken provides a mock function with given fields: token
func (_m *TokenIssuer) ParseAccessToken(token string) (model.Principal, error) {
	ret := _m.Called(token)
	return ret.Get(0).(model.Principal), ret.Error(1)
}

// NewTokenIssuer creates a new instance of TokenIssuer. It also registers a cleanup function to assert the mocks expectations.
func NewTokenIssuer(t testingT) *TokenIssuer {
	m := &TokenIssuer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
