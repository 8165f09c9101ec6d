// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/transpyle/internal/controller"
	m "github.com/mouse-blink/transpyle/internal/model"
)

// MockUI is a mock of controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a mock that asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mck := &MockUI{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

// DisplayTranslation provides a mock function.
func (_m *MockUI) DisplayTranslation(result m.Result, ids []m.Target) error {
	ret := _m.Called(result, ids)

	return ret.Error(0)
}

// DisplayAnalysis provides a mock function.
func (_m *MockUI) DisplayAnalysis(report m.AnalysisReport) error {
	ret := _m.Called(report)

	return ret.Error(0)
}

// DisplayRunInfo provides a mock function.
func (_m *MockUI) DisplayRunInfo(info controller.RunInfo) {
	_m.Called(info)
}

// DisplayReports provides a mock function.
func (_m *MockUI) DisplayReports(reports []m.Report) error {
	ret := _m.Called(reports)

	return ret.Error(0)
}

// Edit provides a mock function. A func(string, controller.TranslateFunc)
// return value is invoked with the arguments.
func (_m *MockUI) Edit(initial string, translate controller.TranslateFunc) (string, error) {
	ret := _m.Called(initial, translate)

	if rf, ok := ret.Get(0).(func(string, controller.TranslateFunc) string); ok {
		return rf(initial, translate), ret.Error(1)
	}

	return ret.String(0), ret.Error(1)
}
