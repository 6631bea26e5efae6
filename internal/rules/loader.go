package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Loader serves the current fraud thresholds and hot-reloads them from a YAML file.
// With an empty path it serves the defaults and never reloads.
type Loader struct {
	path    string
	current atomic.Pointer[Thresholds]
}

// NewLoader performs the initial load. A missing or invalid file at startup is an error.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	if path == "" {
		th := DefaultThresholds()
		l.current.Store(&th)
		return l, nil
	}

	th, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current.Store(th)
	return l, nil
}

// Current returns the thresholds in effect right now.
func (l *Loader) Current() Thresholds {
	return *l.current.Load()
}

// Watch starts a goroutine that swaps in the file's thresholds whenever it changes.
// Invalid revisions are logged and the previous thresholds stay in effect.
// Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	if l.path == "" {
		return func() {}, nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("rules watcher: %w", err)
	}
	// Watch the directory so editors that replace the file by rename are still seen.
	if err := w.Add(filepath.Dir(l.path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("rules watcher add %s: %w", l.path, err)
	}

	target := filepath.Clean(l.path)
	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						logrus.WithError(err).Warn("Ignoring invalid fraud rules file")
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logrus.WithError(err).Warn("Fraud rules watcher error")
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

// Reload forces an immediate re-read of the rules file.
func (l *Loader) Reload() (Thresholds, error) {
	th, err := l.load()
	if err != nil {
		return Thresholds{}, err
	}
	l.current.Store(th)
	logrus.WithField("path", l.path).Info("Fraud thresholds reloaded")
	return *th, nil
}

func (l *Loader) load() (*Thresholds, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", l.path, err)
	}
	th := DefaultThresholds()
	if err := yaml.Unmarshal(data, &th); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", l.path, err)
	}
	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("rules %s: %w", l.path, err)
	}
	return &th, nil
}
