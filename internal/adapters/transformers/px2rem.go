package transformers

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
)

var pxPattern = regexp.MustCompile(`url\([^)]+\)|var\([^)]+\)|(\d*\.?\d+)px`)

// Px2Rem converts px lengths above 1px into rem. Numbers that would receive a px unit are
// converted as well; url() and var() arguments are left alone. Media query keys are
// only rewritten when opts.MediaQuery is set.
func Px2Rem(opts domain.Px2RemOptions) css.Transformer {
	if opts.RootValue <= 0 {
		opts.RootValue = domain.DefaultPx2RemOptions().RootValue
	}
	if opts.Precision < 0 {
		opts.Precision = domain.DefaultPx2RemOptions().Precision
	}
	p := px2rem{opts: opts}
	return css.TransformerFunc(p.visit)
}

type px2rem struct {
	opts domain.Px2RemOptions
}

func (p px2rem) visit(obj css.Object) css.Object {
	out := make(css.Object, 0, len(obj))
	for _, prop := range obj {
		if prop.Child != nil {
			key := strings.TrimSpace(prop.Key)
			if p.opts.MediaQuery && strings.HasPrefix(key, "@") && strings.Contains(key, "px") {
				prop.Key = p.replace(prop.Key)
			}
			out = append(out, prop)
			continue
		}

		values := make([]css.Value, len(prop.Values))
		for i, v := range prop.Values {
			values[i] = p.value(prop.Key, v)
		}
		prop.Values = values
		out = append(out, prop)
	}
	return out
}

func (p px2rem) value(key string, v css.Value) css.Value {
	var next css.Value
	switch {
	case v.IsString() && strings.Contains(v.Str(), "px"):
		next = css.String(p.replace(v.Str()))
	case v.IsNumber() && v.Number() != 0 && !css.Unitless(key):
		next = css.String(p.replace(css.FormatFloat(v.Number()) + "px"))
	default:
		return v
	}
	if v.Skipped() {
		next = next.SkipCheck()
	}
	return next
}

func (p px2rem) replace(s string) string {
	matches := pxPattern.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		last = m[1]
		if m[2] < 0 {
			b.WriteString(s[m[0]:m[1]])
			continue
		}
		pixels, err := strconv.ParseFloat(s[m[2]:m[3]], 64)
		if err != nil || pixels <= 1 {
			b.WriteString(s[m[0]:m[1]])
			continue
		}
		b.WriteString(css.FormatFloat(toFixed(pixels/p.opts.RootValue, p.opts.Precision)))
		b.WriteString("rem")
	}
	b.WriteString(s[last:])
	return b.String()
}

func toFixed(n float64, precision int) float64 {
	mul := math.Pow(10, float64(precision+1))
	whole := math.Floor(n * mul)
	return math.Round(whole/10) * 10 / mul
}
