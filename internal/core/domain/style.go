package domain

import (
	"strconv"

	"go.trai.ch/cssinjs/internal/core/css"
)

const (
	// AttrToken carries the token key of the scope that produced a style element.
	AttrToken = "data-token-hash"
	// AttrMark carries the content hash of a style element.
	AttrMark = "data-css-hash"
	// AttrDevCachePath carries the cache path of a style element in dev mode.
	AttrDevCachePath = "data-dev-cache-path"
	// AttrPriority carries the insertion order of a managed style element.
	AttrPriority = "data-rc-priority"
	// AttrInstance marks the runtime instance that owns a style element.
	AttrInstance = "data-cssinjs-instance"

	// EffectIDPrefix prefixes the id of effect style elements such as keyframes.
	EffectIDPrefix = "_effect-"
)

// EffectID returns the element id of a named effect.
func EffectID(name string) string {
	return EffectIDPrefix + name
}

// StyleRecord is the cached payload of a style registration.
type StyleRecord struct {
	// CSS is the serialized rule text.
	CSS string
	// TokenKey is the key of the token scope that generated the style.
	TokenKey string
	// StyleID is the content hash of the path and CSS.
	StyleID string
	// Path is the cache path of the registration.
	Path CachePath
	// Effects are the keyframes blocks generated with the style.
	Effects []css.Effect
	// Order sorts managed style elements; higher values are inserted later.
	Order int
	// Inline is the <style> markup returned in server-side inline mode.
	Inline string
}

// StyleElement is a style sheet as seen by a style container.
type StyleElement struct {
	// ID is the content hash and the value of AttrMark.
	ID string
	// TokenKey is the value of AttrToken. Effects carry none.
	TokenKey string
	// CachePath is the value of AttrDevCachePath, empty outside dev mode.
	CachePath string
	// Priority is the value of AttrPriority.
	Priority int
	// Owner is the value of AttrInstance, the runtime that inserted the element.
	Owner string
	// CSS is the text content.
	CSS string
}

// Attrs returns the element attributes in their rendering order.
func (e StyleElement) Attrs() []Attr {
	attrs := make([]Attr, 0, 5)
	if e.TokenKey != "" {
		attrs = append(attrs, Attr{Key: AttrToken, Val: e.TokenKey})
	}
	attrs = append(attrs, Attr{Key: AttrMark, Val: e.ID})
	if e.CachePath != "" {
		attrs = append(attrs, Attr{Key: AttrDevCachePath, Val: e.CachePath})
	}
	if e.Priority != 0 {
		attrs = append(attrs, Attr{Key: AttrPriority, Val: strconv.Itoa(e.Priority)})
	}
	if e.Owner != "" {
		attrs = append(attrs, Attr{Key: AttrInstance, Val: e.Owner})
	}
	return attrs
}

// Attr is a single attribute of an extracted style.
type Attr struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// Extracted is one style tag ready to be rendered server-side.
type Extracted struct {
	Attrs []Attr `json:"attrs"`
	CSS   string `json:"css"`
}

// Attr returns the value of the named attribute.
func (e Extracted) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
