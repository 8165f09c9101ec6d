package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/transpyle/internal/adapter"
	m "github.com/mouse-blink/transpyle/internal/model"
)

// MockReportStore is a mock of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

var _ adapter.ReportStore = (*MockReportStore)(nil)

// NewMockReportStore creates a mock that asserts its expectations on cleanup.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mck := &MockReportStore{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

// SaveReports provides a mock function.
func (_m *MockReportStore) SaveReports(dir m.Path, reports []m.Report) error {
	ret := _m.Called(dir, reports)

	return ret.Error(0)
}

// LoadReports provides a mock function.
func (_m *MockReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	ret := _m.Called(dir)

	var reports []m.Report
	if v := ret.Get(0); v != nil {
		reports = v.([]m.Report)
	}

	return reports, ret.Error(1)
}

// RegenerateIndex provides a mock function.
func (_m *MockReportStore) RegenerateIndex(dir m.Path) error {
	ret := _m.Called(dir)

	return ret.Error(0)
}

// CheckUpdates provides a mock function.
func (_m *MockReportStore) CheckUpdates(dir m.Path, snippets []m.Snippet, ids []m.Target) ([]m.Snippet, error) {
	ret := _m.Called(dir, snippets, ids)

	var changed []m.Snippet
	if v := ret.Get(0); v != nil {
		changed = v.([]m.Snippet)
	}

	return changed, ret.Error(1)
}

// CleanReports provides a mock function.
func (_m *MockReportStore) CleanReports(dir m.Path, paths []m.Path) error {
	ret := _m.Called(dir, paths)

	return ret.Error(0)
}
