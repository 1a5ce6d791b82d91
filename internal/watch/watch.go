// Package watch reports changed source files under a set of directories.
package watch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/orizon-lang/ecmaparse/internal/batch"
	"github.com/orizon-lang/ecmaparse/internal/config"
)

// DefaultDebounce is the quiet period before a batch of changes is
// delivered.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches directories recursively. Directories created while
// running are added as they appear.
type Watcher struct {
	w        *fsnotify.Watcher
	logger   *slog.Logger
	Debounce time.Duration
}

// New creates a watcher for roots. A nil logger discards records.
func New(roots []string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{w: fw, logger: logger.With(slog.String("component", "watch")), Debounce: DefaultDebounce}
	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			fw.Close()
			return nil, err
		}
	}

	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && batch.SkipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.w.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		w.logger.Debug("watching", slog.String("dir", path))
		return nil
	})
}

// Run delivers sorted batches of changed source files to onChange until ctx
// is done. Removed and renamed files are not reported.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	pending := make(map[string]bool)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if !batch.SkipDir(info.Name()) {
						if err := w.addTree(ev.Name); err != nil {
							w.logger.Warn("failed to watch new directory", slog.String("error", err.Error()))
						}
					}
					continue
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !config.IsSourceFile(ev.Name) {
				continue
			}
			pending[ev.Name] = true
			timer.Reset(w.Debounce)

		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", slog.String("error", err.Error()))

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)
			onChange(paths)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}
