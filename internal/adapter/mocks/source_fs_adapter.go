// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/transpyle/internal/adapter"
	m "github.com/mouse-blink/transpyle/internal/model"
)

// MockSourceFSAdapter is a mock of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

var _ adapter.SourceFSAdapter = (*MockSourceFSAdapter)(nil)

// NewMockSourceFSAdapter creates a mock that asserts its expectations on cleanup.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mck := &MockSourceFSAdapter{}
	mck.Mock.Test(t)

	t.Cleanup(func() { mck.AssertExpectations(t) })

	return mck
}

// Get provides a mock function.
func (_m *MockSourceFSAdapter) Get(roots []m.Path, include, exclude []string) ([]m.Snippet, error) {
	ret := _m.Called(roots, include, exclude)

	var snippets []m.Snippet
	if v := ret.Get(0); v != nil {
		snippets = v.([]m.Snippet)
	}

	return snippets, ret.Error(1)
}

// Walk provides a mock function.
func (_m *MockSourceFSAdapter) Walk(root m.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(root, recursive, fn)

	return ret.Error(0)
}

// ReadFile provides a mock function.
func (_m *MockSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	ret := _m.Called(path)

	var content []byte
	if v := ret.Get(0); v != nil {
		content = v.([]byte)
	}

	return content, ret.Error(1)
}

// WriteFile provides a mock function.
func (_m *MockSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	ret := _m.Called(path, content)

	return ret.Error(0)
}

// HashFile provides a mock function.
func (_m *MockSourceFSAdapter) HashFile(path m.Path) (string, error) {
	ret := _m.Called(path)

	return ret.String(0), ret.Error(1)
}

// FileInfo provides a mock function.
func (_m *MockSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}

	return info, ret.Error(1)
}
