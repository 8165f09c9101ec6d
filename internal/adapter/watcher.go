package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// DefaultDebounce collapses editor save bursts into a single change.
const DefaultDebounce = 100 * time.Millisecond

// ErrWatchDirectory is returned when the watched path is a directory.
var ErrWatchDirectory = errors.New("watch path is a directory")

// Watcher notifies about changes to a single source file.
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange after every settled
	// write to path.
	Watch(ctx context.Context, path m.Path, onChange func()) error
}

// FSWatcher implements Watcher on top of fsnotify.
type FSWatcher struct {
	debounce time.Duration
}

// NewFSWatcher creates a watcher; a non-positive debounce uses DefaultDebounce.
func NewFSWatcher(debounce time.Duration) *FSWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FSWatcher{debounce: debounce}
}

// Watch watches the parent directory so that editors which replace the file
// on save keep being observed.
func (w *FSWatcher) Watch(ctx context.Context, path m.Path, onChange func()) error {
	target, err := filepath.Abs(string(path))
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrWatchDirectory, target)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target || !isContentChange(event.Op) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}

			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watcher error: %w", err)
		case <-fire:
			fire = nil

			onChange()
		}
	}
}

func isContentChange(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create)
}
