package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// skipDirectories are directories that are never watched.
var skipDirectories = map[string]bool{
	".git":             true,
	".jj":              true,
	"node_modules":     true,
	domain.WorkDirName: true,
}

const eventChannelBuffer = 100

// Watcher implements file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
	logger    ports.Logger
}

// NewWatcher creates a new file system watcher. File system errors are reported to logger.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	return &Watcher{
		fsWatcher: w,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		logger:    logger,
	}, nil
}

// Start begins watching root recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range walkDirs(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "dir", dir)
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events. It ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func walkDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are skipped
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skipDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			op, ok := convertOp(event.Op)
			if !ok {
				continue
			}

			select {
			case w.events <- ports.WatchEvent{Path: event.Name, Operation: op}:
			case <-ctx.Done():
				return
			}

			if op == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !skipDirectories[info.Name()] {
					for dir := range walkDirs(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Error(zerr.Wrap(err, "file system watch error"))
			}
		}
	}
}

func convertOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Write):
		return ports.OpWrite, true
	case op.Has(fsnotify.Create):
		return ports.OpCreate, true
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	default:
		return 0, false
	}
}
