// Package app implements the application layer for cssinjs.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/cssinjs/internal/adapters/linters"      //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/adapters/transformers" //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
	"go.trai.ch/cssinjs/internal/engine/runtime"
	"go.trai.ch/cssinjs/internal/engine/style"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        ports.SnapshotStore
	tracer       ports.Tracer
	hasher       ports.Hasher
	documents    ports.DocumentFactory
	watcher      ports.Watcher
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.SnapshotStore,
	tracer ports.Tracer,
	hasher ports.Hasher,
	documents ports.DocumentFactory,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		tracer:       tracer,
		hasher:       hasher,
		documents:    documents,
		now:          time.Now,
	}
}

// WithWatcher sets the file watcher used by Watch.
func (a *App) WithWatcher(w ports.Watcher) *App {
	a.watcher = w
	return a
}

// WithClock replaces the clock that stamps snapshots.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Stylefile is the stylefile path or a directory to search from.
	Stylefile string
	// Format selects the output rendering.
	Format domain.OutputFormat
	// Force bypasses the snapshot store.
	Force bool
}

// BuildResult summarizes a build.
type BuildResult struct {
	Styles []domain.Extracted
	// Cached reports whether the styles came from the snapshot store.
	Cached bool
}

// Build registers every component of the stylefile and writes the extracted styles to w.
func (a *App) Build(ctx context.Context, w io.Writer, opts BuildOptions) (*BuildResult, error) {
	ctx, span := a.tracer.Start(ctx, "build", ports.WithAttribute("format", string(opts.Format)))
	defer span.End()

	if err := validateFormat(opts.Format); err != nil {
		return nil, err
	}

	sf, err := a.configLoader.Load(opts.Stylefile)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load stylefile")
	}
	span.SetAttribute("stylefile", sf.Path)
	span.SetAttribute("components", len(sf.Components))

	res, err := a.extract(ctx, sf, opts.Force)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("cached", res.Cached)

	if err := a.write(w, opts.Format, res.Styles); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return res, nil
}

// extract returns the stylefile's styles from the snapshot store or by registering every component.
func (a *App) extract(ctx context.Context, sf *domain.Stylefile, force bool) (*BuildResult, error) {
	if !force {
		snap, err := a.store.Get(sf.Path)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("ignoring unreadable snapshot: %v", err))
		} else if snap != nil && snap.SourceHash == sf.SourceHash {
			return &BuildResult{Styles: snap.Styles, Cached: true}, nil
		}
	}

	rt, err := a.newRuntime(sf.Options, nil)
	if err != nil {
		return nil, err
	}
	defer rt.Dispose()

	s := newSession(rt, sf)
	defer s.release()
	if err := s.register(ctx, a.tracer, sf); err != nil {
		return nil, err
	}

	styles := style.Extract(rt)
	snap := domain.Snapshot{SourceHash: sf.SourceHash, Styles: styles, CreatedAt: a.now().UTC()}
	if err := a.store.Put(sf.Path, snap); err != nil {
		return nil, zerr.Wrap(err, "failed to store snapshot")
	}
	return &BuildResult{Styles: styles}, nil
}

// newRuntime builds a runtime configured by the stylefile options.
func (a *App) newRuntime(opts domain.StyleOptions, container ports.StyleContainer) (*runtime.Runtime, error) {
	ts, err := transformers.ByName(opts.Transformers, opts.Px2Rem)
	if err != nil {
		return nil, err
	}
	ls, err := linters.ByName(opts.Linters...)
	if err != nil {
		return nil, err
	}
	if opts.Dev && len(opts.Linters) == 0 {
		ls = linters.Dev()
	}

	return runtime.New(
		runtime.WithHashPriority(opts.HashPriority),
		runtime.WithAutoClear(opts.AutoClear),
		runtime.WithSSRInline(opts.SSRInline),
		runtime.WithMock(opts.Mock),
		runtime.WithDev(opts.Dev),
		runtime.WithTransformers(ts...),
		runtime.WithLinters(ls...),
		runtime.WithHasher(a.hasher),
		runtime.WithLogger(a.logger),
		runtime.WithContainer(container),
	), nil
}

// write renders styles in the requested format.
func (a *App) write(w io.Writer, format domain.OutputFormat, styles []domain.Extracted) error {
	var err error
	switch format {
	case domain.FormatCSS, "":
		_, err = io.WriteString(w, style.RenderCSS(styles))
	case domain.FormatHTML:
		_, err = io.WriteString(w, style.RenderHTML(styles))
	case domain.FormatDocument:
		doc := a.documents.New()
		for _, e := range styles {
			doc.Insert(element(e))
		}
		if err := doc.Render(w); err != nil {
			return zerr.Wrap(err, domain.ErrDocumentRenderFailed.Error())
		}
		return nil
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", string(format))
	}
	if err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	return nil
}

func validateFormat(format domain.OutputFormat) error {
	switch format {
	case domain.FormatCSS, domain.FormatHTML, domain.FormatDocument, "":
		return nil
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", string(format))
	}
}

// element turns an extracted style back into a container element.
func element(e domain.Extracted) domain.StyleElement {
	id, _ := e.Attr(domain.AttrMark)
	tokenKey, _ := e.Attr(domain.AttrToken)
	return domain.StyleElement{ID: id, TokenKey: tokenKey, CSS: e.CSS}
}

// HydrateResult summarizes a hydration.
type HydrateResult struct {
	// Styles is the number of managed styles left in the document.
	Styles int
}

// Hydrate adopts the server-rendered styles of the document read from in, drops duplicates
// and writes the document to out.
func (a *App) Hydrate(ctx context.Context, in io.Reader, out io.Writer) (*HydrateResult, error) {
	_, span := a.tracer.Start(ctx, "hydrate")
	defer span.End()

	doc, err := a.documents.Parse(in)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, domain.ErrDocumentParseFailed.Error())
	}

	// A client runtime rehydrates its container on creation.
	runtime.New(
		runtime.WithContainer(doc),
		runtime.WithMock(domain.MockClient),
		runtime.WithHasher(a.hasher),
		runtime.WithLogger(a.logger),
	)

	if err := doc.Render(out); err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, domain.ErrDocumentRenderFailed.Error())
	}
	n := len(doc.Styles())
	span.SetAttribute("styles", n)
	return &HydrateResult{Styles: n}, nil
}

// Clean removes the snapshot store.
func (a *App) Clean(_ context.Context) error {
	path := domain.DefaultStorePath()
	a.logger.Info(fmt.Sprintf("removing %s...", path))
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove snapshot store"), "path", path)
	}
	return nil
}

// interpolate resolves token references of every component concurrently.
func interpolate(ctx context.Context, tracer ports.Tracer, comps []domain.Component, tok *domain.DerivedToken) ([]css.Node, error) {
	nodes := make([]css.Node, len(comps))
	g, ctx := errgroup.WithContext(ctx)
	for i, comp := range comps {
		g.Go(func() error {
			_, span := tracer.Start(ctx, "interpolate", ports.WithAttribute("component", comp.Name))
			defer span.End()

			node, err := css.Interpolate(comp.Style, tok.Lookup)
			if err != nil {
				span.RecordError(err)
				return zerr.With(err, "component", comp.Name)
			}
			nodes[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}
