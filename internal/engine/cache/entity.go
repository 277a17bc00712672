// Package cache implements the path-keyed, reference-counted store shared by token and style registration.
//
// Releasing the last reference does not delete an entry. It is marked pending and kept
// until Flush, so a consumer that is torn down and recreated at the same path before the
// next flush reuses the entry instead of regenerating it.
package cache

import (
	"container/list"
	"iter"
	"sync"
	"unique"

	"go.trai.ch/cssinjs/internal/core/domain"
)

// Pair is the value stored at a path: a reference count and its payload.
type Pair[T any] struct {
	Count int
	Value T
}

// Updater receives the current pair, or nil when the path is absent, and returns the next one.
// Returning nil, or a pair with a count below one, releases the entry.
// Updaters run under the entity lock and must not call back into the entity.
type Updater[T any] func(prev *Pair[T]) *Pair[T]

// EvictFunc is called for every entry removed by Flush or Reset, outside the entity lock.
type EvictFunc[T any] func(path domain.CachePath, value T)

// Stats counts entity activity since creation.
type Stats struct {
	Created   uint64
	Reused    uint64
	Released  uint64
	Revived   uint64
	Evictions uint64
}

type entry[T any] struct {
	path    domain.CachePath
	pair    Pair[T]
	pending bool
	elem    *list.Element
}

// Entity is a reference-counted store keyed by CachePath.
type Entity[T any] struct {
	mu      sync.Mutex
	entries map[unique.Handle[string]]*entry[T]
	order   *list.List
	onEvict []EvictFunc[T]
	stats   Stats
}

// Option configures an Entity.
type Option[T any] func(*Entity[T])

// WithOnEvict registers a hook for removed entries. Hooks run in registration order.
func WithOnEvict[T any](fn EvictFunc[T]) Option[T] {
	return func(e *Entity[T]) {
		e.onEvict = append(e.onEvict, fn)
	}
}

// New returns an empty entity.
func New[T any](opts ...Option[T]) *Entity[T] {
	e := &Entity[T]{
		entries: make(map[unique.Handle[string]]*entry[T]),
		order:   list.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Get returns the payload stored at path. Pending entries are not returned.
func (e *Entity[T]) Get(path domain.CachePath) (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	en, ok := e.entries[path.Key()]
	if !ok || en.pending {
		var zero T
		return zero, false
	}
	return en.pair.Value, true
}

// Count returns the reference count at path, zero when absent or pending.
func (e *Entity[T]) Count(path domain.CachePath) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if en, ok := e.entries[path.Key()]; ok {
		return en.pair.Count
	}
	return 0
}

// Pending reports whether the entry at path is waiting for the next flush.
func (e *Entity[T]) Pending(path domain.CachePath) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	en, ok := e.entries[path.Key()]
	return ok && en.pending
}

// Update applies fn to the pair at path atomically.
//
// A pending entry is passed to fn with a count of zero; returning a positive count revives it
// with its payload intact. Releasing an absent path is a no-op.
func (e *Entity[T]) Update(path domain.CachePath, fn Updater[T]) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := path.Key()
	en, exists := e.entries[key]

	var prev *Pair[T]
	if exists {
		p := en.pair
		prev = &p
	}

	next := fn(prev)

	if next == nil || next.Count < 1 {
		if !exists || en.pending {
			return
		}
		en.pending = true
		en.pair.Count = 0
		if next != nil {
			en.pair.Value = next.Value
		}
		e.stats.Released++
		return
	}

	if !exists {
		en = &entry[T]{path: path, pair: *next}
		en.elem = e.order.PushBack(en)
		e.entries[key] = en
		e.stats.Created++
		return
	}

	if en.pending {
		e.stats.Revived++
	} else {
		e.stats.Reused++
	}
	en.pending = false
	en.pair = *next
}

// Flush removes every pending entry and runs the eviction hooks for each, oldest first.
// It returns the number of removed entries.
func (e *Entity[T]) Flush() int {
	e.mu.Lock()
	var evicted []*entry[T]
	for elem := e.order.Front(); elem != nil; {
		next := elem.Next()
		en := elem.Value.(*entry[T])
		if en.pending {
			e.removeElement(elem)
			evicted = append(evicted, en)
		}
		elem = next
	}
	e.stats.Evictions += uint64(len(evicted))
	hooks := e.onEvict
	e.mu.Unlock()

	for _, en := range evicted {
		for _, hook := range hooks {
			hook(en.path, en.pair.Value)
		}
	}
	return len(evicted)
}

// Reset removes every entry, live or pending, running the eviction hooks for each.
func (e *Entity[T]) Reset() int {
	e.mu.Lock()
	evicted := make([]*entry[T], 0, len(e.entries))
	for elem := e.order.Front(); elem != nil; elem = elem.Next() {
		evicted = append(evicted, elem.Value.(*entry[T]))
	}
	e.entries = make(map[unique.Handle[string]]*entry[T])
	e.order.Init()
	e.stats.Evictions += uint64(len(evicted))
	hooks := e.onEvict
	e.mu.Unlock()

	for _, en := range evicted {
		for _, hook := range hooks {
			hook(en.path, en.pair.Value)
		}
	}
	return len(evicted)
}

// All iterates live entries in insertion order. It works on a snapshot taken when iteration
// starts, so the entity may be updated while iterating.
func (e *Entity[T]) All() iter.Seq2[domain.CachePath, T] {
	return func(yield func(domain.CachePath, T) bool) {
		for _, en := range e.snapshot() {
			if !yield(en.path, en.pair.Value) {
				return
			}
		}
	}
}

// Values returns the live payloads in insertion order.
func (e *Entity[T]) Values() []T {
	snap := e.snapshot()
	out := make([]T, len(snap))
	for i, en := range snap {
		out[i] = en.pair.Value
	}
	return out
}

// Len returns the number of live entries.
func (e *Entity[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for _, en := range e.entries {
		if !en.pending {
			n++
		}
	}
	return n
}

// Stats returns a snapshot of the activity counters.
func (e *Entity[T]) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

func (e *Entity[T]) snapshot() []entry[T] {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]entry[T], 0, e.order.Len())
	for elem := e.order.Front(); elem != nil; elem = elem.Next() {
		en := elem.Value.(*entry[T])
		if en.pending {
			continue
		}
		out = append(out, entry[T]{path: en.path, pair: en.pair})
	}
	return out
}

func (e *Entity[T]) removeElement(elem *list.Element) {
	e.order.Remove(elem)
	en := elem.Value.(*entry[T])
	delete(e.entries, en.path.Key())
}
