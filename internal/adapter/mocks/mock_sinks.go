package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/gafeval/internal/model"
)

// MockReportStore is a mock implementation of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a MockReportStore whose expectations are asserted on cleanup.
func NewMockReportStore(t testingT) *MockReportStore {
	ms := &MockReportStore{}
	ms.Mock.Test(t)

	t.Cleanup(func() { ms.AssertExpectations(t) })

	return ms
}

// SaveReport provides a mock function.
func (ms *MockReportStore) SaveReport(dir m.Path, report m.RunReport) (m.Path, error) {
	ret := ms.Called(dir, report)

	path, _ := ret.Get(0).(m.Path)

	return path, ret.Error(1)
}

// LoadReports provides a mock function.
func (ms *MockReportStore) LoadReports(dir m.Path) ([]m.RunReport, error) {
	ret := ms.Called(dir)

	reports, _ := ret.Get(0).([]m.RunReport)

	return reports, ret.Error(1)
}

// MockMetricsSink is a mock implementation of adapter.MetricsSink.
type MockMetricsSink struct {
	mock.Mock
}

// NewMockMetricsSink creates a MockMetricsSink whose expectations are asserted on cleanup.
func NewMockMetricsSink(t testingT) *MockMetricsSink {
	ms := &MockMetricsSink{}
	ms.Mock.Test(t)

	t.Cleanup(func() { ms.AssertExpectations(t) })

	return ms
}

// Export provides a mock function.
func (ms *MockMetricsSink) Export(path m.Path, report m.RunReport) error {
	ret := ms.Called(path, report)
	return ret.Error(0)
}
