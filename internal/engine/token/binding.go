// Package token memoizes theme derivations per distinct input combination.
package token

import (
	"sync"

	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/adapters/hash"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/engine/cache"
	"go.trai.ch/cssinjs/internal/engine/runtime"
)

// PathPrefix is the first segment of every token cache path.
const PathPrefix = "token"

// Options are the per-binding inputs besides the theme and token layers.
type Options struct {
	// Salt is mixed into the token key so that equal tokens can be scoped apart.
	Salt string
	// Override is merged over the derived token.
	Override *domain.Token
	// Format post-processes the merged derived token. It is not part of the cache path,
	// so a binding must keep using the same function for a given path.
	Format func(*domain.Token) *domain.Token
}

// Path returns the cache path of a theme and its inputs.
// Inputs that are equal by value produce the same path.
func Path(theme *domain.Theme, tokens []*domain.Token, opts Options) domain.CachePath {
	merged := domain.MergeTokens(tokens...)
	fp := hash.Fingerprint(theme.ID(), merged.Canonical(), opts.Salt, opts.Override.Canonical())
	return domain.NewCachePath(PathPrefix, theme.ID(), fp)
}

// Acquire returns the derived token at the path of the inputs, deriving it on first use,
// and takes one reference on it.
func Acquire(rt *runtime.Runtime, theme *domain.Theme, tokens []*domain.Token, opts Options) (*domain.DerivedToken, domain.CachePath, error) {
	if theme == nil {
		return nil, domain.CachePath{}, domain.ErrNilTheme
	}
	path := Path(theme, tokens, opts)
	reload := rt.ClaimReload(path)

	var out, replaced *domain.DerivedToken
	created := false
	rt.Tokens().Update(path, func(prev *cache.Pair[*domain.DerivedToken]) *cache.Pair[*domain.DerivedToken] {
		if prev != nil && !reload {
			out = prev.Value
			return &cache.Pair[*domain.DerivedToken]{Count: prev.Count + 1, Value: prev.Value}
		}
		count := 1
		if prev != nil {
			count = prev.Count + 1
			replaced = prev.Value
		} else {
			created = true
		}
		out = derive(rt, theme, tokens, opts)
		return &cache.Pair[*domain.DerivedToken]{Count: count, Value: out}
	})

	switch {
	case created:
		rt.TrackToken(out.Key)
	case replaced != nil && replaced.Key != out.Key:
		rt.TrackToken(out.Key)
		rt.UntrackToken(replaced.Key)
	}
	return out, path, nil
}

// Release drops one reference on path. Releasing an unknown path is a no-op.
func Release(rt *runtime.Runtime, path domain.CachePath) {
	rt.Tokens().Update(path, func(prev *cache.Pair[*domain.DerivedToken]) *cache.Pair[*domain.DerivedToken] {
		if prev == nil || prev.Count <= 1 {
			return nil
		}
		return &cache.Pair[*domain.DerivedToken]{Count: prev.Count - 1, Value: prev.Value}
	})
}

func derive(rt *runtime.Runtime, theme *domain.Theme, tokens []*domain.Token, opts Options) *domain.DerivedToken {
	values := domain.MergeTokens(theme.DerivedToken(tokens...), opts.Override)
	if opts.Format != nil {
		values = opts.Format(values)
	}
	h := rt.Hasher()
	key := h.Hash(opts.Salt + "_" + domain.FlattenToken(values))
	return &domain.DerivedToken{
		Values: values,
		Key:    key,
		HashID: rt.HashPrefix() + "-" + h.Hash(key),
	}
}

// Binding is one consumer's slot in the token cache. Binding again with different inputs
// moves the reference to the new path; Release drops it.
type Binding struct {
	rt *runtime.Runtime

	mu    sync.Mutex
	path  domain.CachePath
	bound bool
}

// NewBinding returns an unbound consumer slot.
func NewBinding(rt *runtime.Runtime) *Binding {
	return &Binding{rt: rt}
}

// Bind derives (or reuses) the token for the inputs and releases the previously bound path.
func (b *Binding) Bind(theme *domain.Theme, tokens []*domain.Token, opts Options) (*domain.DerivedToken, error) {
	tok, path, err := Acquire(b.rt, theme, tokens, opts)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to bind token")
	}

	b.mu.Lock()
	prev, hadPrev := b.path, b.bound
	b.path, b.bound = path, true
	b.mu.Unlock()

	if hadPrev {
		Release(b.rt, prev)
	}
	return tok, nil
}

// Path returns the bound path.
func (b *Binding) Path() (domain.CachePath, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.path, b.bound
}

// Release drops the bound reference. Calling it twice is a no-op.
func (b *Binding) Release() {
	b.mu.Lock()
	path, bound := b.path, b.bound
	b.bound = false
	b.mu.Unlock()

	if bound {
		Release(b.rt, path)
	}
}
