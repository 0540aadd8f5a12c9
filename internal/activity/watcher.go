package activity

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher tails an activity log file and reports write events so the
// importer can re-ingest appended samples.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan string
}

// NewWatcher watches the directory containing path. Watching the directory
// rather than the file survives the log being rotated or recreated.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{watcher: fw, path: path, events: make(chan string, 16)}, nil
}

// Events yields the log path once per observed write.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Run pumps filesystem events until ctx is cancelled or the underlying
// watcher closes. Watcher errors are swallowed; a missed event only delays
// the next import.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				select {
				case w.events <- w.path:
				default:
					// An import is already pending; coalesce.
				}
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
