package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/transpyle/internal/adapter"
	m "github.com/mouse-blink/transpyle/internal/model"
)

// MockWatcher is a mock of adapter.Watcher.
type MockWatcher struct {
	mock.Mock
}

var _ adapter.Watcher = (*MockWatcher)(nil)

// NewMockWatcher creates a mock that asserts its expectations on cleanup.
func NewMockWatcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWatcher {
	mck := &MockWatcher{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

// Watch provides a mock function.
func (_m *MockWatcher) Watch(ctx context.Context, path m.Path, onChange func()) error {
	ret := _m.Called(ctx, path, onChange)

	return ret.Error(0)
}

// MockGoSyntaxAdapter is a mock of adapter.GoSyntaxAdapter.
type MockGoSyntaxAdapter struct {
	mock.Mock
}

var _ adapter.GoSyntaxAdapter = (*MockGoSyntaxAdapter)(nil)

// NewMockGoSyntaxAdapter creates a mock that asserts its expectations on cleanup.
func NewMockGoSyntaxAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGoSyntaxAdapter {
	mck := &MockGoSyntaxAdapter{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

// Check provides a mock function.
func (_m *MockGoSyntaxAdapter) Check(src string) error {
	ret := _m.Called(src)

	return ret.Error(0)
}
