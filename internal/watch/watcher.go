// Package watch triggers a debounced callback whenever a single file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// DefaultDebounce collapses editor save bursts into a single rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors one file and calls onChange after writes settle.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(context.Context) error

	watcher    *fsnotify.Watcher
	mu         sync.Mutex
	started    bool
	stopOnce   sync.Once
	stopChan   chan struct{}
	reloadChan chan struct{}
	wg         sync.WaitGroup
}

// New creates a Watcher for path. A non-positive debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, onChange func(context.Context) error) (*Watcher, error) {
	if onChange == nil {
		return nil, ferrors.InternalError("watch callback is nil").Build()
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve watched path").
			WithContext("path", path).Build()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to create file watcher").Build()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:       absPath,
		debounce:   debounce,
		onChange:   onChange,
		watcher:    fw,
		stopChan:   make(chan struct{}),
		reloadChan: make(chan struct{}, 1),
	}, nil
}

// Start begins watching. It returns once the watch is registered; events are
// handled in the background until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return ferrors.InternalError("watcher already started").Build()
	}

	// Watching the directory survives editors that replace the file on save.
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to watch directory").
			WithContext("path", dir).Build()
	}
	w.started = true

	slog.Info("Watching configuration", logfields.Path(w.path))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends watching and waits for the background loops, including a
// rebuild that is already running. Safe to call twice.
func (w *Watcher) Stop() {
	w.close()
	w.wg.Wait()
}

func (w *Watcher) close() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	})
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Configuration change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				w.trigger()
			case event.Has(fsnotify.Remove):
				slog.Warn("Configuration file removed", logfields.Path(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.close()
			return
		case <-w.stopChan:
			return
		case <-w.reloadChan:
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			// Runs on this goroutine so Stop waits for it.
			if err := w.onChange(ctx); err != nil {
				slog.Error("Rebuild after change failed", logfields.Path(w.path), logfields.Error(err))
			}
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
	}
}
