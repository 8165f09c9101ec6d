// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/transpyle/internal/domain"
)

// MockWorkflow is a mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a mock that asserts its expectations on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mck := &MockWorkflow{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

// Translate provides a mock function.
func (_m *MockWorkflow) Translate(args domain.TranslateArgs) error {
	return _m.Called(args).Error(0)
}

// Analyze provides a mock function.
func (_m *MockWorkflow) Analyze(args domain.AnalyzeArgs) error {
	return _m.Called(args).Error(0)
}

// Run provides a mock function.
func (_m *MockWorkflow) Run(args domain.RunArgs) error {
	return _m.Called(args).Error(0)
}

// View provides a mock function.
func (_m *MockWorkflow) View(args domain.ViewArgs) error {
	return _m.Called(args).Error(0)
}

// Clean provides a mock function.
func (_m *MockWorkflow) Clean(args domain.CleanArgs) error {
	return _m.Called(args).Error(0)
}

// Watch provides a mock function.
func (_m *MockWorkflow) Watch(ctx context.Context, args domain.WatchArgs) error {
	return _m.Called(ctx, args).Error(0)
}

// Edit provides a mock function.
func (_m *MockWorkflow) Edit(args domain.EditArgs) error {
	return _m.Called(args).Error(0)
}
