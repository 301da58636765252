package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/arkadyh/rdflow/triple"
)

// BatchFunc consumes one freshly-loaded A-Box batch's triples.
// Implementations typically call reasoner.Engine.Insert followed by Flush.
type BatchFunc func([]triple.Triple) error

// WatchDir feeds new `.ntenc` batch files dropped into dir into fn as they
// appear, a natural extension of spec §3 Lifecycle's "A-Box triples enter
// in batches" for a long-running process — the source's main.rs hard-codes
// its batch split (part1/part2/part3, commented out there) rather than
// discovering batches at runtime.
type WatchDir struct {
	dir string
	fn  BatchFunc
	log *logrus.Logger

	watcher *fsnotify.Watcher
	mu      sync.Mutex
	seen    map[string]bool
}

// NewWatchDir constructs a WatchDir over dir. A nil log installs a default
// logrus.Logger.
func NewWatchDir(dir string, fn BatchFunc, log *logrus.Logger) (*WatchDir, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ingest: create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("ingest: watch %s: %w", dir, err)
	}
	if log == nil {
		log = logrus.New()
	}
	return &WatchDir{dir: dir, fn: fn, log: log, watcher: w, seen: make(map[string]bool)}, nil
}

// Run blocks, dispatching each new `.ntenc` file under dir to fn as it is
// created or finishes writing (fsnotify Write/Create events), until ctx is
// canceled or the watcher's channels close. Errors the watcher reports are
// logged and the loop goes on. Files are dispatched at most once.
func (w *WatchDir) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(ev.Name) != ".ntenc" {
				continue
			}
			if err := w.dispatch(ev.Name); err != nil {
				w.log.WithError(err).WithField("file", ev.Name).Error("ingest: batch dispatch failed")
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Error("ingest: watch error")
		}
	}
}

func (w *WatchDir) dispatch(path string) error {
	w.mu.Lock()
	if w.seen[path] {
		w.mu.Unlock()
		return nil
	}
	w.seen[path] = true
	w.mu.Unlock()

	batch, err := LoadNTEnc(path, 0)
	if err != nil {
		return err
	}
	return w.fn(batch.Triples())
}

// Close stops the watcher without waiting for Run's goroutine to exit.
func (w *WatchDir) Close() error { return w.watcher.Close() }
