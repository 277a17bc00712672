package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
	"go.trai.ch/cssinjs/internal/engine/style"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Stylefile is the stylefile path or a directory to search from.
	Stylefile string
	// Output is the file rewritten after every rebuild.
	Output string
	// Format selects the output rendering.
	Format domain.OutputFormat
	// Debounce coalesces bursts of writes. Zero uses watcher.DefaultDebounceWindow.
	Debounce time.Duration
}

// Watch builds the stylefile into the output file and rebuilds it with a hot reload whenever
// the stylefile changes, until ctx is canceled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	if a.watcher == nil {
		return zerr.With(domain.ErrWatcherFailed, "reason", "no watcher configured")
	}
	if opts.Output == "" {
		return domain.ErrOutputRequired
	}
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	sf, err := a.configLoader.Load(opts.Stylefile)
	if err != nil {
		return zerr.Wrap(err, "failed to load stylefile")
	}

	live := &liveBuild{app: a, opts: opts, stylefile: sf.Path}
	defer live.close()
	if err := live.apply(ctx, sf); err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, filepath.Dir(sf.Path)); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	defer func() { _ = a.watcher.Stop() }()

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	deb := watcher.NewDebouncer(window, func([]string) { live.reload(ctx) })

	a.logger.Info(fmt.Sprintf("watching %s", sf.Path))
	for ev := range a.watcher.Events() {
		if filepath.Clean(ev.Path) != sf.Path || ev.Operation == ports.OpRemove {
			continue
		}
		deb.Add(ev.Path)
	}
	deb.Flush()
	return nil
}

// liveBuild keeps a client runtime over an in-memory document between rebuilds.
type liveBuild struct {
	app       *App
	opts      WatchOptions
	stylefile string

	mu      sync.Mutex
	doc     ports.Document
	options domain.StyleOptions
	s       *session
	closed  bool
}

func (l *liveBuild) reload(ctx context.Context) {
	sf, err := l.app.configLoader.Load(l.stylefile)
	if err != nil {
		l.app.logger.Error(zerr.Wrap(err, "failed to reload stylefile"))
		return
	}
	if err := l.apply(ctx, sf); err != nil {
		l.app.logger.Error(err)
	}
}

func (l *liveBuild) apply(ctx context.Context, sf *domain.Stylefile) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	// A debounced rebuild may still be in flight when Watch returns.
	if l.closed {
		return nil
	}

	ctx, span := l.app.tracer.Start(ctx, "rebuild", ports.WithAttribute("stylefile", sf.Path))
	defer span.End()

	// Runtime options cannot change in place, so a new option set starts from a fresh runtime.
	if l.s == nil || !reflect.DeepEqual(l.options, sf.Options) {
		l.closeLocked()
		doc := l.app.documents.New()
		rt, err := l.app.newRuntime(sf.Options, doc)
		if err != nil {
			span.RecordError(err)
			return err
		}
		l.doc, l.options, l.s = doc, sf.Options, newSession(rt, sf)
	} else {
		l.s.rt.MarkHMR()
	}

	if err := l.s.register(ctx, l.app.tracer, sf); err != nil {
		span.RecordError(err)
		return err
	}
	removed := l.s.rt.Flush()
	span.SetAttribute("removed", removed)

	var buf bytes.Buffer
	styles := style.Extract(l.s.rt)
	if l.opts.Format == domain.FormatDocument && l.s.rt.Container() != nil {
		if err := l.doc.Render(&buf); err != nil {
			return zerr.Wrap(err, domain.ErrDocumentRenderFailed.Error())
		}
	} else if err := l.app.write(&buf, l.opts.Format, styles); err != nil {
		return err
	}
	if err := os.WriteFile(l.opts.Output, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", l.opts.Output)
	}

	l.app.logger.Info(fmt.Sprintf("wrote %d styles to %s", len(styles), l.opts.Output))
	return nil
}

func (l *liveBuild) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeLocked()
	l.closed = true
}

func (l *liveBuild) closeLocked() {
	if l.s == nil {
		return
	}
	l.s.release()
	l.s.rt.Dispose()
	l.s = nil
}
