package domain

import (
	"slices"
	"strings"
	"unique"
)

const pathSep = "\x00"

// CachePath identifies a logical consumer slot. Paths compare by their segments.
// The key is interned so repeated lookups of hot paths share one handle.
type CachePath struct {
	segments []string
	key      unique.Handle[string]
}

// NewCachePath builds a path from its segments.
func NewCachePath(segments ...string) CachePath {
	segs := slices.Clone(segments)
	return CachePath{
		segments: segs,
		key:      unique.Make(strings.Join(segs, pathSep)),
	}
}

// Key returns the interned comparison key.
func (p CachePath) Key() unique.Handle[string] {
	return p.key
}

// Segments returns a copy of the segments.
func (p CachePath) Segments() []string {
	return slices.Clone(p.segments)
}

// Len returns the number of segments.
func (p CachePath) Len() int {
	return len(p.segments)
}

// Append returns a new path with extra segments.
func (p CachePath) Append(segments ...string) CachePath {
	return NewCachePath(append(slices.Clone(p.segments), segments...)...)
}

// Equal reports whether both paths have the same segments.
func (p CachePath) Equal(o CachePath) bool {
	return p.key == o.key
}

// Join joins the segments with sep.
func (p CachePath) Join(sep string) string {
	return strings.Join(p.segments, sep)
}

// String returns the path joined with '|', the form used in dev attributes and logs.
func (p CachePath) String() string {
	return p.Join("|")
}

// MarshalText implements encoding.TextMarshaler.
func (p CachePath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
