package runtime

import (
	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
)

const (
	// HashPrefix prefixes hash ids in production mode.
	HashPrefix = "css"
	// DevHashPrefix prefixes hash ids in dev mode, warning against targeting them from user styles.
	DevHashPrefix = "css-dev-only-do-not-override"
)

// Options is the configuration surface of a Runtime.
type Options struct {
	// HashPriority selects :where(.hash) (low) or .hash (high) scoping.
	HashPriority css.HashPriority
	// Container receives style elements. Without one the runtime behaves as a server.
	Container ports.StyleContainer
	// AutoClear removes a style element when its last consumer is flushed away. Defaults to true.
	AutoClear bool
	// SSRInline makes server-side registrations return inline <style> markup.
	SSRInline bool
	// Mock forces server ("server") or client ("client") behaviour.
	Mock string
	// Transformers run on every style tree before serialization.
	Transformers []css.Transformer
	// Linters inspect every serialized declaration.
	Linters []css.Linter
	// Dev enables the dev hash prefix and the cache path attribute.
	Dev bool
	// Hasher fingerprints token keys, hash ids and style ids.
	Hasher ports.Hasher
	// Logger receives diagnostics.
	Logger ports.Logger
}

// Option configures a Runtime.
type Option func(*Options)

// WithHashPriority sets the specificity of the hash selector.
func WithHashPriority(p css.HashPriority) Option {
	return func(o *Options) { o.HashPriority = p }
}

// WithContainer sets the style container.
func WithContainer(c ports.StyleContainer) Option {
	return func(o *Options) { o.Container = c }
}

// WithAutoClear controls removal of style elements whose consumers are gone.
func WithAutoClear(enabled bool) Option {
	return func(o *Options) { o.AutoClear = enabled }
}

// WithSSRInline enables inline style markup for server-side registrations.
func WithSSRInline(enabled bool) Option {
	return func(o *Options) { o.SSRInline = enabled }
}

// WithMock forces server or client behaviour.
func WithMock(mode string) Option {
	return func(o *Options) { o.Mock = mode }
}

// WithTransformers appends style transformers.
func WithTransformers(ts ...css.Transformer) Option {
	return func(o *Options) { o.Transformers = append(o.Transformers, ts...) }
}

// WithLinters appends declaration linters.
func WithLinters(ls ...css.Linter) Option {
	return func(o *Options) { o.Linters = append(o.Linters, ls...) }
}

// WithDev enables dev mode.
func WithDev(enabled bool) Option {
	return func(o *Options) { o.Dev = enabled }
}

// WithHasher sets the fingerprint function.
func WithHasher(h ports.Hasher) Option {
	return func(o *Options) { o.Hasher = h }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l ports.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func defaultOptions() Options {
	return Options{
		HashPriority: css.PriorityLow,
		AutoClear:    true,
		Logger:       nopLogger{},
	}
}

// ServerSide reports whether the options describe a runtime without a live container.
func (o Options) ServerSide() bool {
	return o.Mock == domain.MockServer || o.Container == nil
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}
