// Package transformers provides style tree transformers that run before serialization.
package transformers

import (
	"strings"

	"go.trai.ch/cssinjs/internal/core/css"
)

type physical struct {
	props []string
	// whole copies the entire value to every property instead of splitting it.
	whole bool
}

func split(props ...string) physical { return physical{props: props} }
func whole(props ...string) physical { return physical{props: props, whole: true} }

var logicalMap = map[string]physical{
	"inset":              split("top", "right", "bottom", "left"),
	"inset-block":        split("top", "bottom"),
	"inset-block-start":  split("top"),
	"inset-block-end":    split("bottom"),
	"inset-inline":       split("left", "right"),
	"inset-inline-start": split("left"),
	"inset-inline-end":   split("right"),

	"margin-block":        split("margin-top", "margin-bottom"),
	"margin-block-start":  split("margin-top"),
	"margin-block-end":    split("margin-bottom"),
	"margin-inline":       split("margin-left", "margin-right"),
	"margin-inline-start": split("margin-left"),
	"margin-inline-end":   split("margin-right"),

	"padding-block":        split("padding-top", "padding-bottom"),
	"padding-block-start":  split("padding-top"),
	"padding-block-end":    split("padding-bottom"),
	"padding-inline":       split("padding-left", "padding-right"),
	"padding-inline-start": split("padding-left"),
	"padding-inline-end":   split("padding-right"),

	"border-block":        whole("border-top", "border-bottom"),
	"border-block-start":  whole("border-top"),
	"border-block-end":    whole("border-bottom"),
	"border-inline":       whole("border-left", "border-right"),
	"border-inline-start": whole("border-left"),
	"border-inline-end":   whole("border-right"),

	"border-block-width":        split("border-top-width", "border-bottom-width"),
	"border-block-start-width":  split("border-top-width"),
	"border-block-end-width":    split("border-bottom-width"),
	"border-inline-width":       split("border-left-width", "border-right-width"),
	"border-inline-start-width": split("border-left-width"),
	"border-inline-end-width":   split("border-right-width"),

	"border-block-style":        split("border-top-style", "border-bottom-style"),
	"border-block-start-style":  split("border-top-style"),
	"border-block-end-style":    split("border-bottom-style"),
	"border-inline-style":       split("border-left-style", "border-right-style"),
	"border-inline-start-style": split("border-left-style"),
	"border-inline-end-style":   split("border-right-style"),

	"border-block-color":        split("border-top-color", "border-bottom-color"),
	"border-block-start-color":  split("border-top-color"),
	"border-block-end-color":    split("border-bottom-color"),
	"border-inline-color":       split("border-left-color", "border-right-color"),
	"border-inline-start-color": split("border-left-color"),
	"border-inline-end-color":   split("border-right-color"),

	"border-start-start-radius": split("border-top-left-radius"),
	"border-start-end-radius":   split("border-top-right-radius"),
	"border-end-start-radius":   split("border-bottom-left-radius"),
	"border-end-end-radius":     split("border-bottom-right-radius"),
}

// LegacyLogicalProperties rewrites logical properties into physical ones for browsers
// without logical property support. Rewritten values are not linted.
var LegacyLogicalProperties css.Transformer = css.TransformerFunc(legacyLogical)

func legacyLogical(obj css.Object) css.Object {
	out := make(css.Object, 0, len(obj))
	for _, p := range obj {
		target, ok := logicalMap[css.PropertyName(p.Key)]
		if !ok || p.Child != nil || len(p.Values) != 1 {
			out = append(out, p)
			continue
		}
		v := p.Values[0]
		switch {
		case v.IsNumber():
			for _, prop := range target.props {
				out = append(out, css.Decl(prop, v.SkipCheck()))
			}
		case v.IsString():
			out = append(out, expand(target, v.Str())...)
		default:
			out = append(out, p)
		}
	}
	return out
}

func expand(target physical, raw string) []css.Prop {
	values, important := splitValues(raw)
	wrap := func(s string) css.Value {
		if important {
			s += " !important"
		}
		return css.String(s).SkipCheck()
	}

	out := make([]css.Prop, 0, len(target.props))
	if target.whole {
		body := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "!important"))
		for _, prop := range target.props {
			out = append(out, css.Decl(prop, wrap(body)))
		}
		return out
	}
	if len(values) == 0 {
		values = []string{""}
	}
	for i, prop := range target.props {
		out = append(out, css.Decl(prop, wrap(pick(values, i, len(target.props)))))
	}
	return out
}

// pick follows the shorthand rules: two sides repeat the first value, four sides fall back
// to the opposite side and then to the first value.
func pick(values []string, i, sides int) string {
	if i < len(values) {
		return values[i]
	}
	if sides == 4 && i-2 >= 0 && i-2 < len(values) {
		return values[i-2]
	}
	return values[0]
}

// splitValues splits a value on whitespace, keeping parenthesized groups such as calc() intact.
func splitValues(raw string) ([]string, bool) {
	s := strings.TrimSpace(raw)
	important := false
	if idx := strings.Index(s, "!important"); idx >= 0 {
		important = true
		s = strings.TrimSpace(s[:idx])
	}

	var (
		out   []string
		group []string
		depth int
	)
	for _, item := range strings.Fields(s) {
		depth += strings.Count(item, "(") - strings.Count(item, ")")
		if depth >= 0 {
			group = append(group, item)
		}
		if depth == 0 {
			out = append(out, strings.Join(group, " "))
			group = group[:0]
		}
	}
	return out, important
}
