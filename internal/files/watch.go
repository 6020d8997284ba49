package files

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher reports changes to the directory being browsed
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
}

// NewWatcher creates a watcher that is not yet watching anything
func NewWatcher() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create directory watcher: %w", err)
	}
	return &Watcher{watcher: w}, nil
}

// Watch switches the watched directory to dir
func (w *Watcher) Watch(dir string) error {
	dir = filepath.Clean(dir)
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.watcher.Remove(w.dir); err != nil {
			logrus.Debugf("Watcher: failed to stop watching %s: %v", w.dir, err)
		}
	}
	w.dir = ""
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dir = dir
	return nil
}

// Dir returns the watched directory, or "" when nothing is watched
func (w *Watcher) Dir() string {
	return w.dir
}

// Next blocks until the watched directory changes and returns that directory.
// It returns false once the watcher is closed.
func (w *Watcher) Next() (string, bool) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return "", false
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Write) {
				logrus.Debugf("Watcher: %s", event)
				return filepath.Dir(event.Name), true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return "", false
			}
			logrus.Warnf("Watcher: %v", err)
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
