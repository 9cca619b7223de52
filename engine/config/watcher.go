package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a configuration file when it changes on disk.
//
// The parent directory is watched rather than the file itself so that editors which save by
// renaming a temporary file over the original keep triggering reloads. Bursts of events are
// debounced into a single reload.
type Watcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	debounce time.Duration
	timer    *time.Timer
	onReload func(*Config)
	onError  func(error)
	started  bool
	done     chan struct{}
}

// NewWatcher creates a Watcher for the configuration file at path.
//
// Parameters:
//   - path: the configuration file
//   - debounce: quiet period after the last event before reloading
//   - onReload: receives each successfully loaded configuration
//
// Returns:
//   - *Watcher: the watcher, not yet started
//   - error: an error if the path cannot be resolved or watched
func NewWatcher(path string, debounce time.Duration, onReload func(*Config)) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &Watcher{
		watcher:  fw,
		path:     absPath,
		debounce: debounce,
		onReload: onReload,
		onError: func(err error) {
			log.Printf("[Config] reload failed: %v", err)
		},
		done: make(chan struct{}),
	}, nil
}

// SetErrorCallback replaces the default handler for reload errors, which logs them.
func (w *Watcher) SetErrorCallback(callback func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = callback
}

// Start begins watching for changes in a background goroutine.
func (w *Watcher) Start() {
	w.mu.Lock()
	w.started = true
	w.mu.Unlock()

	go func() {
		defer close(w.done)
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Name != w.path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					w.schedule()
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.reportError(fmt.Errorf("watcher: %w", err))
			}
		}
	}()
}

// schedule (re)arms the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	log.Printf("[Config] reloaded %s", w.path)
	w.onReload(c)
}

func (w *Watcher) reportError(err error) {
	w.mu.Lock()
	onError := w.onError
	w.mu.Unlock()
	if onError != nil {
		onError(err)
	}
}

// Close stops the watcher and any pending reload.
//
// Returns:
//   - error: an error from closing the underlying watcher
func (w *Watcher) Close() error {
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
