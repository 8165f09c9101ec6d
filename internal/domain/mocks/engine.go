package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/transpyle/internal/domain"
	m "github.com/mouse-blink/transpyle/internal/model"
)

// MockEngine is a mock of domain.Engine.
type MockEngine struct {
	mock.Mock
}

var _ domain.Engine = (*MockEngine)(nil)

// NewMockEngine creates a mock that asserts its expectations on cleanup.
func NewMockEngine(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEngine {
	mck := &MockEngine{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

// Analyze provides a mock function.
func (_m *MockEngine) Analyze(source string) m.Context {
	return _m.Called(source).Get(0).(m.Context)
}

// Translate provides a mock function.
func (_m *MockEngine) Translate(source string, ids ...m.Target) m.Result {
	return _m.Called(source, ids).Get(0).(m.Result)
}

// Report provides a mock function.
func (_m *MockEngine) Report(ctx m.Context) m.AnalysisReport {
	return _m.Called(ctx).Get(0).(m.AnalysisReport)
}

// LibraryEquivalent provides a mock function.
func (_m *MockEngine) LibraryEquivalent(lib m.Library, target m.Target) string {
	return _m.Called(lib, target).String(0)
}

// Targets provides a mock function.
func (_m *MockEngine) Targets() []m.Target {
	ret := _m.Called()

	var ids []m.Target
	if v := ret.Get(0); v != nil {
		ids = v.([]m.Target)
	}

	return ids
}
