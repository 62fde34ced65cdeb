package config

import (
	"fmt"
	"time"

	"github.com/jhenstridge/go-inotify"
	"github.com/learnopengl/learnopengl/lib/log"
)

// Watcher rereads a config file whenever it is rewritten.
type Watcher struct {
	path    string
	watcher *inotify.Watcher
	changed func(*Config)

	// done is closed when the event loop has returned
	done chan struct{}
}

// Watch calls changed with every valid config written to path. Invalid
// configs are logged and skipped.
func Watch(path string, changed func(*Config)) (*Watcher, error) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create inotify watcher: %w", err)
	}
	_, err = watcher.Watch(path)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("could not watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    path,
		watcher: watcher,
		changed: changed,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	logger := log.Module("config")
	// Event is closed once the watcher is closed
	for ev := range w.watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE == 0 {
			continue
		}
		// give slow writers a moment to finish
		time.Sleep(100 * time.Millisecond)

		cfg, err := Parse(w.path)
		if err != nil {
			logger.Error("ignoring config change", "err", err)
			continue
		}
		logger.Info("config reloaded", "path", w.path)
		w.changed(cfg)
	}
}

// Close stops watching. It returns the last error the watcher ran into.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	if err != nil {
		log.Module("config").Warn("inotify watcher stopped with an error", "path", w.path, "err", err)
	}
	return err
}
