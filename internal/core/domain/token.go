package domain

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Token is an ordered mapping of token names to values.
// Values are strings, numbers, booleans, nested *Token or nil.
type Token struct {
	keys   []string
	values map[string]any
}

// NewToken returns an empty token.
func NewToken() *Token {
	return &Token{values: make(map[string]any)}
}

// TokenOf builds a token from a map. Keys are ordered alphabetically; nested maps become nested tokens.
func TokenOf(m map[string]any) *Token {
	t := NewToken()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		v := m[k]
		if nested, ok := v.(map[string]any); ok {
			v = TokenOf(nested)
		}
		t.Set(k, v)
	}
	return t
}

// Set assigns a value. A new key is appended; an existing key keeps its position.
func (t *Token) Set(key string, value any) *Token {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
	return t
}

// Get returns the value stored under key.
func (t *Token) Get(key string) (any, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Lookup resolves a dotted path through nested tokens.
func (t *Token) Lookup(path string) (any, bool) {
	cur := t
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := cur.Get(part)
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := v.(*Token)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (t *Token) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.keys)
}

// Len returns the number of keys.
func (t *Token) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Clone returns a shallow copy. Nested tokens are shared.
func (t *Token) Clone() *Token {
	out := NewToken()
	if t == nil {
		return out
	}
	for _, k := range t.keys {
		out.Set(k, t.values[k])
	}
	return out
}

// MergeTokens overlays tokens left to right. Later tokens shadow earlier ones at the top level only;
// nested tokens are replaced, not merged. Nil tokens are skipped.
func MergeTokens(tokens ...*Token) *Token {
	out := NewToken()
	for _, t := range tokens {
		if t == nil {
			continue
		}
		for _, k := range t.keys {
			out.Set(k, t.values[k])
		}
	}
	return out
}

// FlattenToken concatenates every key with its value, recursing into nested tokens.
// Nil values flatten as "undefined".
func FlattenToken(t *Token) string {
	var b strings.Builder
	flatten(&b, t)
	return b.String()
}

func flatten(b *strings.Builder, t *Token) {
	if t == nil {
		return
	}
	for _, k := range t.keys {
		b.WriteString(k)
		if nested, ok := t.values[k].(*Token); ok && nested != nil {
			flatten(b, nested)
			continue
		}
		b.WriteString(FormatTokenValue(t.values[k]))
	}
}

// FormatTokenValue renders a scalar token value as text.
func FormatTokenValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "undefined"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case *Token:
		return FlattenToken(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Canonical writes a deterministic serialization with keys sorted at every level.
// Two tokens with equal contents produce the same text regardless of insertion order.
func (t *Token) Canonical() string {
	var b strings.Builder
	canonical(&b, t)
	return b.String()
}

func canonical(b *strings.Builder, t *Token) {
	b.WriteByte('{')
	if t != nil {
		keys := slices.Clone(t.keys)
		slices.Sort(keys)
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			switch x := t.values[k].(type) {
			case *Token:
				canonical(b, x)
			case string:
				b.WriteString(strconv.Quote(x))
			default:
				b.WriteString(FormatTokenValue(x))
			}
		}
	}
	b.WriteByte('}')
}

// MarshalJSON encodes the token as an object in insertion order.
func (t *Token) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(t.values[k])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// DerivedToken is the output of a theme derivation with its computed fingerprints attached.
type DerivedToken struct {
	// Values holds the derived token, with overrides applied.
	Values *Token
	// Key is the token key: the hash of the salted, flattened derived token.
	Key string
	// HashID scopes styles generated from this token.
	HashID string
}

// Lookup resolves a dotted token path.
func (d *DerivedToken) Lookup(path string) (any, bool) {
	if d == nil {
		return nil, false
	}
	return d.Values.Lookup(path)
}
