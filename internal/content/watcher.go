package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/coffeedocs/internal/logfields"
)

// Watcher reloads a content file into a Store whenever the file changes.
// A file that fails to load leaves the previous snapshot in place.
type Watcher struct {
	path     string
	store    *Store
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(*Registry, error)

	mu      sync.Mutex
	timer   *time.Timer
	started bool
	done    chan struct{}
}

// NewWatcher creates a watcher for path. onReload may be nil.
func NewWatcher(path string, store *Store, debounce time.Duration, onReload func(*Registry, error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve content path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if onReload == nil {
		onReload = func(*Registry, error) {}
	}
	return &Watcher{
		path:     abs,
		store:    store,
		watcher:  fw,
		debounce: debounce,
		onReload: onReload,
		done:     make(chan struct{}),
	}, nil
}

// Start watches the directory holding the file; editors often replace files
// instead of writing them in place.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch content directory %s: %w", dir, err)
	}
	slog.Info("Watching content file", logfields.File(w.path))
	w.mu.Lock()
	w.started = true
	w.mu.Unlock()
	go w.loop(ctx)
	return nil
}

// Stop ends the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	started := w.started
	w.mu.Unlock()
	err := w.watcher.Close()
	if started {
		<-w.done
	}
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.schedule()
			} else if ev.Has(fsnotify.Remove) {
				slog.Warn("Content file removed; keeping current registry", logfields.File(w.path))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	reg, err := LoadFile(w.path)
	if err != nil {
		slog.Error("Content reload failed; keeping current registry", logfields.File(w.path), logfields.Error(err))
		w.onReload(nil, err)
		return
	}
	w.store.Replace(reg)
	endpoints, fields, _ := reg.Counts()
	slog.Info("Content reloaded", logfields.File(w.path),
		slog.Int("endpoints", endpoints), slog.Int("fields", fields))
	w.onReload(reg, nil)
}
