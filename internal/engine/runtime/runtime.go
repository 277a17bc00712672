// Package runtime holds the explicit style context shared by token binding and style registration.
//
// A Runtime owns one token cache and one style cache. Create one per isolation boundary
// (a test, a server request, an application root), call Flush at host-defined boundaries
// to reclaim released entries, and Dispose it when the boundary ends.
package runtime

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unique"

	"github.com/google/uuid"

	"go.trai.ch/cssinjs/internal/adapters/hash"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
	"go.trai.ch/cssinjs/internal/engine/cache"
)

// Runtime is the style context.
type Runtime struct {
	id     string
	opts   Options
	tokens *cache.Entity[*domain.DerivedToken]
	styles *cache.Entity[*domain.StyleRecord]

	mu        sync.Mutex
	tokenKeys map[string]int
	effects   map[string]struct{}
	reloaded  map[unique.Handle[string]]struct{}

	hmr atomic.Bool
}

// New builds a runtime. When the container can rehydrate, server-rendered styles are adopted immediately.
func New(opts ...Option) *Runtime {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Hasher == nil {
		o.Hasher = hash.Murmur{}
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	if o.HashPriority == "" {
		o.HashPriority = defaultOptions().HashPriority
	}

	r := &Runtime{
		id:        uuid.NewString(),
		opts:      o,
		tokenKeys: make(map[string]int),
		effects:   make(map[string]struct{}),
		reloaded:  make(map[unique.Handle[string]]struct{}),
	}
	r.tokens = cache.New(cache.WithOnEvict[*domain.DerivedToken](r.evictToken))
	r.styles = cache.New(cache.WithOnEvict[*domain.StyleRecord](r.evictStyle))

	if rh, ok := o.Container.(ports.Rehydrator); ok && !o.ServerSide() {
		if removed := rh.Rehydrate(r.id); removed > 0 {
			o.Logger.Info(fmt.Sprintf("removed %d duplicate server-rendered styles", removed))
		}
	}
	return r
}

// ID returns the instance marker stamped on owned style elements.
func (r *Runtime) ID() string { return r.id }

// Options returns a copy of the configuration.
func (r *Runtime) Options() Options { return r.opts }

// Tokens returns the token cache.
func (r *Runtime) Tokens() *cache.Entity[*domain.DerivedToken] { return r.tokens }

// Styles returns the style cache.
func (r *Runtime) Styles() *cache.Entity[*domain.StyleRecord] { return r.styles }

// Hasher returns the fingerprint function.
func (r *Runtime) Hasher() ports.Hasher { return r.opts.Hasher }

// Logger returns the diagnostics logger.
func (r *Runtime) Logger() ports.Logger { return r.opts.Logger }

// Container returns the style container, nil when server-side.
func (r *Runtime) Container() ports.StyleContainer {
	if r.opts.ServerSide() {
		return nil
	}
	return r.opts.Container
}

// HashPrefix returns the prefix of hash ids for the current mode.
func (r *Runtime) HashPrefix() string {
	if r.opts.Dev {
		return DevHashPrefix
	}
	return HashPrefix
}

// MarkHMR makes every registration until the next Flush regenerate its payload.
func (r *Runtime) MarkHMR() { r.hmr.Store(true) }

// HMR reports whether a hot reload is in progress.
func (r *Runtime) HMR() bool { return r.hmr.Load() }

// ClaimReload reports whether path should be regenerated by the hot reload in progress.
// Each path is regenerated once per reload.
func (r *Runtime) ClaimReload(path domain.CachePath) bool {
	if !r.HMR() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reloaded[path.Key()]; ok {
		return false
	}
	r.reloaded[path.Key()] = struct{}{}
	return true
}

// Flush removes released style and token entries and ends a hot reload.
// It returns the number of removed entries.
func (r *Runtime) Flush() int {
	n := r.styles.Flush()
	n += r.tokens.Flush()

	r.mu.Lock()
	r.reloaded = make(map[unique.Handle[string]]struct{})
	r.mu.Unlock()
	r.hmr.Store(false)
	return n
}

// Reset drops every entry and forgets the effects that were inserted.
func (r *Runtime) Reset() {
	r.styles.Reset()
	r.tokens.Reset()

	r.mu.Lock()
	effects := r.effects
	r.effects = make(map[string]struct{})
	r.tokenKeys = make(map[string]int)
	r.mu.Unlock()

	if c := r.Container(); c != nil {
		for name := range effects {
			c.Remove(domain.EffectID(name))
		}
	}
}

// Dispose resets the runtime and removes every element it still owns from the container.
func (r *Runtime) Dispose() {
	r.Reset()
	c := r.Container()
	if c == nil {
		return
	}
	for _, el := range c.Styles() {
		if el.Owner == r.id {
			c.Remove(el.ID)
		}
	}
}

// ClaimEffect reports whether name has not been claimed before by this runtime.
func (r *Runtime) ClaimEffect(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.effects[name]; ok {
		return false
	}
	r.effects[name] = struct{}{}
	return true
}

// TrackToken records a new token entry carrying key.
func (r *Runtime) TrackToken(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokenKeys[key]++
}

func (r *Runtime) evictToken(_ domain.CachePath, tok *domain.DerivedToken) {
	if tok == nil {
		return
	}
	r.UntrackToken(tok.Key)
}

// UntrackToken drops one token entry carrying key. Once no entry carries a key, the style
// elements this runtime inserted under it are removed, as long as another token key is still live.
func (r *Runtime) UntrackToken(key string) {
	r.mu.Lock()
	r.tokenKeys[key]--
	var cleanable []string
	for k, n := range r.tokenKeys {
		if n <= 0 {
			cleanable = append(cleanable, k)
		}
	}
	live := len(r.tokenKeys) - len(cleanable)
	if live <= 0 {
		r.mu.Unlock()
		return
	}
	for _, k := range cleanable {
		delete(r.tokenKeys, k)
	}
	r.mu.Unlock()

	c := r.Container()
	if c == nil {
		return
	}
	remove := make(map[string]struct{}, len(cleanable))
	for _, k := range cleanable {
		remove[k] = struct{}{}
	}
	for _, el := range c.Styles() {
		if _, ok := remove[el.TokenKey]; ok && el.Owner == r.id {
			c.Remove(el.ID)
		}
	}
}

func (r *Runtime) evictStyle(_ domain.CachePath, rec *domain.StyleRecord) {
	if rec == nil {
		return
	}
	if !r.opts.AutoClear && !r.HMR() {
		return
	}
	if c := r.Container(); c != nil {
		c.Remove(rec.StyleID)
	}
}
