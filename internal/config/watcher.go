package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gridwing/gridwing/internal/logging"
)

// debounceDelay coalesces the write bursts editors produce when
// saving a file.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the config file when it changes on disk and hands
// the result to a callback. The callback runs on the watcher
// goroutine; the caller is responsible for marshaling the new config
// onto the UI thread.
type Watcher struct {
	path     string
	onChange func(Config)
	log      *logging.Logger

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	timer   *time.Timer
	done    chan struct{}
	started bool
}

// NewWatcher creates a watcher for the given config path.
func NewWatcher(path string, onChange func(Config), log *logging.Logger) *Watcher {
	if log == nil {
		log = logging.Default()
	}
	return &Watcher{
		path:     path,
		onChange: onChange,
		log:      log.WithComponent("config-watcher"),
		done:     make(chan struct{}),
	}
}

// Start begins watching. Watching the directory rather than the file
// survives the rename-and-replace dance most editors do on save.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = fw

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return err
	}

	w.started = true
	go w.run()
	return nil
}

// Stop ends watching. Safe to call once after Start.
func (w *Watcher) Stop() {
	if !w.started {
		return
	}
	close(w.done)
	w.watcher.Close()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("reload failed: %v", err)
		return
	}
	w.log.Info("config reloaded from %s", w.path)
	w.onChange(cfg)
}
