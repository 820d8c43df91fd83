// Package watch re-runs a callback when markdown sources under a content root change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/marzneshin/docsite/internal/docs"
	"github.com/marzneshin/docsite/internal/logfields"
)

// DefaultDebounce coalesces bursts of editor writes into one callback.
const DefaultDebounce = 500 * time.Millisecond

// ContentWatcher monitors a content root and calls onChange after changes settle.
// Callbacks run one at a time on the watcher goroutine.
type ContentWatcher struct {
	dir      string
	onChange func(context.Context)
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	stop    chan struct{}
	done    chan struct{}
}

// Option configures a ContentWatcher.
type Option func(*ContentWatcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *ContentWatcher) { w.debounce = d }
}

// WithLogger sets the watcher logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *ContentWatcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher for dir. It does not start watching until Start.
func New(dir string, onChange func(context.Context), opts ...Option) (*ContentWatcher, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content root: %w", err)
	}
	w := &ContentWatcher{dir: abs, onChange: onChange, debounce: DefaultDebounce, logger: slog.Default()}
	for _, o := range opts {
		o(w)
	}
	return w, nil
}

// Start begins monitoring the content root.
func (w *ContentWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return errors.New("content watcher already started")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(w.dir); err != nil {
		_ = fw.Close()
		return fmt.Errorf("failed to watch content root %s: %w", w.dir, err)
	}

	w.watcher = fw
	w.stop = make(chan struct{})
	w.done = make(chan struct{})
	w.logger.Info("Watching content root", logfields.Path(w.dir))
	go w.loop(ctx, fw, w.stop, w.done)
	return nil
}

// Stop stops the watcher and waits for a running callback to return.
func (w *ContentWatcher) Stop() error {
	w.mu.Lock()
	fw, stop, done := w.watcher, w.stop, w.done
	w.watcher = nil
	w.mu.Unlock()
	if fw == nil {
		return nil
	}

	close(stop)
	err := fw.Close()
	<-done
	return err
}

// Done is closed when the watch loop exits, either from Stop or context cancellation.
func (w *ContentWatcher) Done() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}

func (w *ContentWatcher) loop(ctx context.Context, fw *fsnotify.Watcher, stop, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("Content change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("Content watcher error", logfields.Error(err))
		case <-timer.C:
			w.onChange(ctx)
		}
	}
}

// relevant filters out chmod noise and non-markdown files such as editor swap files.
func relevant(e fsnotify.Event) bool {
	if e.Op == fsnotify.Chmod {
		return false
	}
	return filepath.Ext(e.Name) == docs.FileExt
}
