// Package mocks holds testify mocks for the model interfaces, in the layout
// mockery generates.
package mocks

import "github.com/stretchr/testify/mock"

type testingT interface {
	mock.TestingT
	Cleanup(func())
}
