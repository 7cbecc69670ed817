// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/gafeval/internal/controller"
	m "github.com/mouse-blink/gafeval/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI whose expectations are asserted on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mu := &MockUI{}
	mu.Mock.Test(t)

	t.Cleanup(func() { mu.AssertExpectations(t) })

	return mu
}

// DisplayRunInfo provides a mock function.
func (mu *MockUI) DisplayRunInfo(info controller.RunInfo) {
	mu.Called(info)
}

// DisplayPathNodes provides a mock function.
func (mu *MockUI) DisplayPathNodes(referencePath string, nodes []m.NodeID) {
	mu.Called(referencePath, nodes)
}

// DisplayIncorrect provides a mock function.
func (mu *MockUI) DisplayIncorrect(diag m.Diagnostic) {
	mu.Called(diag)
}

// DisplaySummary provides a mock function.
func (mu *MockUI) DisplaySummary(summary m.RunSummary) error {
	ret := mu.Called(summary)
	return ret.Error(0)
}

// DisplayPaths provides a mock function.
func (mu *MockUI) DisplayPaths(paths []controller.PathInfo) error {
	ret := mu.Called(paths)
	return ret.Error(0)
}

// DisplayReports provides a mock function.
func (mu *MockUI) DisplayReports(reports []m.RunReport) error {
	ret := mu.Called(reports)
	return ret.Error(0)
}
