// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/gafeval/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAlignmentSource is a mock implementation of adapter.AlignmentSource.
type MockAlignmentSource struct {
	mock.Mock
}

// NewMockAlignmentSource creates a MockAlignmentSource whose expectations are asserted on cleanup.
func NewMockAlignmentSource(t testingT) *MockAlignmentSource {
	ms := &MockAlignmentSource{}
	ms.Mock.Test(t)

	t.Cleanup(func() { ms.AssertExpectations(t) })

	return ms
}

// ReadAlignments provides a mock function.
func (ms *MockAlignmentSource) ReadAlignments(ctx context.Context, path m.Path, tool m.Tool) ([]m.Alignment, error) {
	ret := ms.Called(ctx, path, tool)

	alignments, _ := ret.Get(0).([]m.Alignment)

	return alignments, ret.Error(1)
}

// MockMappingSource is a mock implementation of adapter.MappingSource.
type MockMappingSource struct {
	mock.Mock
}

// NewMockMappingSource creates a MockMappingSource whose expectations are asserted on cleanup.
func NewMockMappingSource(t testingT) *MockMappingSource {
	ms := &MockMappingSource{}
	ms.Mock.Test(t)

	t.Cleanup(func() { ms.AssertExpectations(t) })

	return ms
}

// LoadMappings provides a mock function.
func (ms *MockMappingSource) LoadMappings(ctx context.Context, path m.Path) (m.Mappings, error) {
	ret := ms.Called(ctx, path)

	mappings, _ := ret.Get(0).(m.Mappings)

	return mappings, ret.Error(1)
}
