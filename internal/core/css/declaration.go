package css

import "strings"

// unitless lists the properties whose numeric values are emitted without a px suffix.
// Keys are kebab-case.
var unitless = map[string]struct{}{
	"animation-iteration-count": {},
	"border-image-outset":       {},
	"border-image-slice":        {},
	"border-image-width":        {},
	"box-flex":                  {},
	"box-flex-group":            {},
	"box-ordinal-group":         {},
	"column-count":              {},
	"columns":                   {},
	"flex":                      {},
	"flex-grow":                 {},
	"flex-positive":             {},
	"flex-shrink":               {},
	"flex-negative":             {},
	"flex-order":                {},
	"grid-row":                  {},
	"grid-row-end":              {},
	"grid-row-span":             {},
	"grid-row-start":            {},
	"grid-column":               {},
	"grid-column-end":           {},
	"grid-column-span":          {},
	"grid-column-start":         {},
	"-ms-grid-row":              {},
	"-ms-grid-row-span":         {},
	"-ms-grid-column":           {},
	"-ms-grid-column-span":      {},
	"font-weight":               {},
	"line-height":               {},
	"opacity":                   {},
	"order":                     {},
	"orphans":                   {},
	"tab-size":                  {},
	"widows":                    {},
	"z-index":                   {},
	"zoom":                      {},
	"-webkit-line-clamp":        {},
	"fill-opacity":              {},
	"flood-opacity":             {},
	"stop-opacity":              {},
	"stroke-dasharray":          {},
	"stroke-dashoffset":         {},
	"stroke-miterlimit":         {},
	"stroke-opacity":            {},
	"stroke-width":              {},
}

// Unitless reports whether numeric values of property are emitted without a unit.
// The property may be given in camelCase or kebab-case.
func Unitless(property string) bool {
	_, ok := unitless[PropertyName(property)]
	return ok
}

// PropertyName converts a camelCase property key to its kebab-case CSS name.
// Custom properties and keys that are already kebab-case are returned unchanged.
// A leading capital denotes a vendor prefix: WebkitLineClamp becomes -webkit-line-clamp.
func PropertyName(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	name := b.String()
	if strings.HasPrefix(name, "-ms-") || key == "" {
		return name
	}
	if strings.HasPrefix(key, "ms") && len(key) > 2 && key[2] >= 'A' && key[2] <= 'Z' {
		return "-" + name
	}
	return name
}

func formatNumber(property string, n float64) string {
	if n == 0 || Unitless(property) {
		return FormatFloat(n)
	}
	return FormatFloat(n) + "px"
}
