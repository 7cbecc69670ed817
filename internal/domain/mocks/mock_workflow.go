// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/gafeval/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mw := &MockWorkflow{}
	mw.Mock.Test(t)

	t.Cleanup(func() { mw.AssertExpectations(t) })

	return mw
}

// Compare provides a mock function.
func (mw *MockWorkflow) Compare(ctx context.Context, args domain.CompareArgs) error {
	ret := mw.Called(ctx, args)
	return ret.Error(0)
}

// Paths provides a mock function.
func (mw *MockWorkflow) Paths(ctx context.Context, args domain.PathsArgs) error {
	ret := mw.Called(ctx, args)
	return ret.Error(0)
}

// View provides a mock function.
func (mw *MockWorkflow) View(args domain.ViewArgs) error {
	ret := mw.Called(args)
	return ret.Error(0)
}
