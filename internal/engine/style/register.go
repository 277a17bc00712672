// Package style serializes, caches and injects style sheets, one per consumer path.
package style

import (
	"strings"
	"sync"

	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
	"go.trai.ch/cssinjs/internal/engine/cache"
	"go.trai.ch/cssinjs/internal/engine/runtime"
)

// PathPrefix is the first segment of every style cache path.
const PathPrefix = "style"

// Generator produces the style tree of a registration. It only runs on a cache miss.
type Generator func() (css.Node, error)

// Info identifies a registration.
type Info struct {
	// Token is the derived token the style is generated from. It may be nil for global styles.
	Token *domain.DerivedToken
	// HashID scopes the root selectors. Leave it empty for unscoped styles.
	HashID string
	// Path names the consumer, such as a component name.
	Path []string
	// Order sorts the style among managed styles; higher values are inserted later.
	Order int
}

func (i Info) tokenKey() string {
	if i.Token == nil {
		return ""
	}
	return i.Token.Key
}

// Path returns the cache path of a registration.
func Path(info Info) domain.CachePath {
	segs := make([]string, 0, len(info.Path)+3)
	segs = append(segs, PathPrefix, info.tokenKey(), info.HashID)
	return domain.NewCachePath(append(segs, info.Path...)...)
}

// Register returns the style record of info, generating and injecting it on first use,
// and takes one reference on it.
func Register(rt *runtime.Runtime, info Info, gen Generator) (*domain.StyleRecord, domain.CachePath, error) {
	path := Path(info)
	if gen == nil {
		return nil, path, zerr.With(domain.ErrNilGenerator, "path", path.String())
	}
	reload := rt.ClaimReload(path)

	var (
		rec, replaced *domain.StyleRecord
		diags         []css.Diagnostic
		genErr        error
		fresh         bool
	)
	rt.Styles().Update(path, func(prev *cache.Pair[*domain.StyleRecord]) *cache.Pair[*domain.StyleRecord] {
		if prev != nil && !reload {
			rec = prev.Value
			return &cache.Pair[*domain.StyleRecord]{Count: prev.Count + 1, Value: prev.Value}
		}
		built, found, err := build(rt, info, path, gen)
		if err != nil {
			genErr = err
			return prev
		}
		rec, diags, fresh = built, found, true
		count := 1
		if prev != nil {
			count = prev.Count + 1
			replaced = prev.Value
		}
		return &cache.Pair[*domain.StyleRecord]{Count: count, Value: built}
	})
	if genErr != nil {
		return nil, path, genErr
	}

	if fresh {
		for _, d := range diags {
			rt.Logger().Warn(d.String())
		}
		if c := rt.Container(); c != nil {
			if replaced != nil && replaced.StyleID != rec.StyleID {
				c.Remove(replaced.StyleID)
			}
			materialize(rt, c, rec)
		}
	}
	return rec, path, nil
}

// Release drops one reference on path. The element is removed at the next flush once no
// consumer remains. Releasing an unknown path is a no-op.
func Release(rt *runtime.Runtime, path domain.CachePath) {
	rt.Styles().Update(path, func(prev *cache.Pair[*domain.StyleRecord]) *cache.Pair[*domain.StyleRecord] {
		if prev == nil || prev.Count <= 1 {
			return nil
		}
		return &cache.Pair[*domain.StyleRecord]{Count: prev.Count - 1, Value: prev.Value}
	})
}

func build(rt *runtime.Runtime, info Info, path domain.CachePath, gen Generator) (*domain.StyleRecord, []css.Diagnostic, error) {
	node, err := gen()
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to generate style"), "path", path.String())
	}

	opts := rt.Options()
	res, err := css.Serialize(node, css.Config{
		HashID:       info.HashID,
		HashPriority: opts.HashPriority,
		Path:         path.String(),
		Transformers: opts.Transformers,
		Linters:      opts.Linters,
	})
	if err != nil {
		return nil, nil, zerr.With(err, "path", path.String())
	}

	id := append([]string{info.tokenKey()}, info.Path...)
	rec := &domain.StyleRecord{
		CSS:      res.CSS,
		TokenKey: info.tokenKey(),
		StyleID:  rt.Hasher().Hash(strings.Join(id, "%") + res.CSS),
		Path:     path,
		Effects:  res.Effects,
		Order:    info.Order,
	}
	if opts.ServerSide() && opts.SSRInline {
		rec.Inline = RenderHTML(extractRecord(rec, nil))
	}
	return rec, res.Diagnostics, nil
}

func materialize(rt *runtime.Runtime, c ports.StyleContainer, rec *domain.StyleRecord) {
	el := domain.StyleElement{
		ID:       rec.StyleID,
		TokenKey: rec.TokenKey,
		Priority: rec.Order,
		Owner:    rt.ID(),
		CSS:      rec.CSS,
	}
	if rt.Options().Dev {
		el.CachePath = rec.Path.String()
	}
	c.Insert(el)

	for _, eff := range rec.Effects {
		if !rt.ClaimEffect(eff.Name) {
			continue
		}
		c.Insert(domain.StyleElement{
			ID:       domain.EffectID(eff.Name),
			Priority: rec.Order,
			Owner:    rt.ID(),
			CSS:      eff.CSS,
		})
	}
}

// Registration is one consumer's slot in the style cache. Registering again with a different
// path moves the reference; Release drops it.
type Registration struct {
	rt *runtime.Runtime

	mu    sync.Mutex
	path  domain.CachePath
	bound bool
}

// NewRegistration returns an unbound consumer slot.
func NewRegistration(rt *runtime.Runtime) *Registration {
	return &Registration{rt: rt}
}

// Register registers the style and releases the previously registered path.
func (r *Registration) Register(info Info, gen Generator) (*domain.StyleRecord, error) {
	rec, path, err := Register(r.rt, info, gen)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	prev, hadPrev := r.path, r.bound
	r.path, r.bound = path, true
	r.mu.Unlock()

	if hadPrev {
		Release(r.rt, prev)
	}
	return rec, nil
}

// Release drops the registered reference. Calling it twice is a no-op.
func (r *Registration) Release() {
	r.mu.Lock()
	path, bound := r.path, r.bound
	r.bound = false
	r.mu.Unlock()

	if bound {
		Release(r.rt, path)
	}
}
