package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/Sebkah/99draft-sub000/internal/logging"
)

// ReloadHandler receives the freshly loaded configuration after the watched
// file changes. It is called from the watcher goroutine.
type ReloadHandler func(*Config)

// Watcher reloads a configuration file when it changes on disk. Rapid write
// bursts are debounced into one reload; a file that fails to parse is logged
// and skipped, keeping the previous configuration in effect.
type Watcher struct {
	path     string
	handler  ReloadHandler
	debounce time.Duration
	logger   *log.Logger

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher during creation.
type WatcherOption func(*Watcher)

// WithDebounce sets how long writes must settle before a reload fires.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the logger used for diagnostics.
func WithWatcherLogger(logger *log.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher starts watching the configuration file at path. The containing
// directory is watched rather than the file itself, so editors that replace
// the file on save (write to temp, rename over) are still observed.
func NewWatcher(path string, handler ReloadHandler, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		logger:   logging.Default(),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.fsw, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.fsw.Add(filepath.Dir(absPath)); err != nil {
		w.fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error",
				logging.FieldPath, w.path,
				logging.FieldError, err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous configuration",
			logging.FieldPath, w.path,
			logging.FieldError, err)
		return
	}

	w.logger.Info("config reloaded", logging.FieldPath, w.path)
	if w.handler != nil {
		w.handler(cfg)
	}
}
