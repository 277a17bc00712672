package domain

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Derivation turns design token layers into a derived token. It must be referentially transparent.
type Derivation func(tokens ...*Token) *Token

var themeSeq atomic.Uint64

// Theme wraps a derivation with a unique identity.
// Two themes built from the same function are distinct; re-creating a theme forces recomputation.
type Theme struct {
	id     string
	derive Derivation
}

// NewTheme returns a theme with a fresh identity.
func NewTheme(derive Derivation) *Theme {
	return &Theme{
		id:     "theme-" + strconv.FormatUint(themeSeq.Add(1), 36),
		derive: derive,
	}
}

// ID returns the theme identity.
func (t *Theme) ID() string {
	return t.id
}

// DerivedToken runs the derivation. Nothing is cached here.
func (t *Theme) DerivedToken(tokens ...*Token) *Token {
	if t.derive == nil {
		return MergeTokens(tokens...)
	}
	return t.derive(tokens...)
}

// MergeDerivation adapts a single-token function into a Derivation that first merges its input layers.
func MergeDerivation(fn func(merged *Token) *Token) Derivation {
	return func(tokens ...*Token) *Token {
		return fn(MergeTokens(tokens...))
	}
}

// AliasDerivation merges the input layers and then applies rules in order.
// A rule value of the form "$name" copies the merged (or previously derived) token name;
// any other value is set as a constant.
func AliasDerivation(rules *Token) Derivation {
	return MergeDerivation(func(merged *Token) *Token {
		out := merged.Clone()
		for _, k := range rules.Keys() {
			v, _ := rules.Get(k)
			if s, ok := v.(string); ok && strings.HasPrefix(s, "$") {
				src, _ := out.Lookup(strings.TrimPrefix(s, "$"))
				out.Set(k, src)
				continue
			}
			out.Set(k, v)
		}
		return out
	})
}
