package adapter

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/transpyle/internal/model"
)

func TestFSWatcher_Watch_NotifiesOnWrite(t *testing.T) {
	dir := realTempDir(t)
	file := filepath.Join(dir, "main.py")
	require.NoError(t, os.WriteFile(file, []byte("x = 1\n"), 0o600))

	w := NewFSWatcher(20 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 8)
	done := make(chan error, 1)

	go func() {
		done <- w.Watch(ctx, m.Path(file), func() { changes <- struct{}{} })
	}()

	// Give fsnotify time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("x = 2\n"), 0o600))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatalf("expected change notification")
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("Watch did not return after cancel")
	}
}

func TestFSWatcher_Watch_IgnoresSiblings(t *testing.T) {
	dir := realTempDir(t)
	file := filepath.Join(dir, "main.py")
	require.NoError(t, os.WriteFile(file, []byte("x = 1\n"), 0o600))

	w := NewFSWatcher(20 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	var calls atomic.Int32

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "other.py"), []byte("y = 1\n"), 0o600)
	}()

	require.NoError(t, w.Watch(ctx, m.Path(file), func() { calls.Add(1) }))
	assert.Equal(t, int32(0), calls.Load())
}

func TestFSWatcher_Watch_Errors(t *testing.T) {
	t.Parallel()

	w := NewFSWatcher(0)
	assert.Equal(t, DefaultDebounce, w.debounce)

	err := w.Watch(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.py")), func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat")

	err = w.Watch(context.Background(), m.Path(t.TempDir()), func() {})
	assert.ErrorIs(t, err, ErrWatchDirectory)
}
