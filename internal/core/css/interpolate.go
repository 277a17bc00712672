package css

import (
	"fmt"
	"regexp"
	"strconv"

	"go.trai.ch/zerr"
)

// Lookup resolves a token name to its value.
type Lookup func(name string) (any, bool)

var (
	wholeRef  = regexp.MustCompile(`^\$([A-Za-z_][\w.-]*)$`)
	inlineRef = regexp.MustCompile(`\$\{([A-Za-z_][\w.-]*)\}`)
)

// Interpolate returns a copy of node with token references replaced.
//
// A string value of the form "$name" takes the token's value, keeping numbers numeric.
// "${name}" inside a larger string, a selector or raw CSS is replaced by the token's text.
// Keyframes are shared and returned as-is.
func Interpolate(node Node, lookup Lookup) (Node, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case List:
		out := make(List, 0, len(n))
		for _, child := range n {
			c, err := Interpolate(child, lookup)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	case Raw:
		s, err := interpolateString(string(n), lookup)
		if err != nil {
			return nil, err
		}
		return Raw(s), nil
	case *Keyframes:
		return n, nil
	case Object:
		out := make(Object, 0, len(n))
		for _, p := range n {
			key, err := interpolateString(p.Key, lookup)
			if err != nil {
				return nil, err
			}
			np := Prop{Key: key}
			if p.Child != nil {
				child, err := Interpolate(p.Child, lookup)
				if err != nil {
					return nil, err
				}
				np.Child = child
			}
			if len(p.Values) > 0 {
				np.Values = make([]Value, len(p.Values))
				for i, v := range p.Values {
					nv, err := interpolateValue(v, lookup)
					if err != nil {
						return nil, err
					}
					np.Values[i] = nv
				}
			}
			out = append(out, np)
		}
		return out, nil
	default:
		return nil, malformed(fmt.Sprintf("unsupported node type %T", node), "")
	}
}

func interpolateValue(v Value, lookup Lookup) (Value, error) {
	if v.kind != kindString {
		return v, nil
	}
	if m := wholeRef.FindStringSubmatch(v.str); m != nil {
		raw, ok := lookup(m[1])
		if !ok {
			return Value{}, zerr.With(ErrUnknownToken, "token", m[1])
		}
		out, err := tokenValue(raw, m[1])
		if err != nil {
			return Value{}, err
		}
		out.skipCheck = v.skipCheck
		return out, nil
	}
	s, err := interpolateString(v.str, lookup)
	if err != nil {
		return Value{}, err
	}
	v.str = s
	return v, nil
}

func interpolateString(s string, lookup Lookup) (string, error) {
	var firstErr error
	out := inlineRef.ReplaceAllStringFunc(s, func(m string) string {
		name := inlineRef.FindStringSubmatch(m)[1]
		raw, ok := lookup(name)
		if !ok {
			if firstErr == nil {
				firstErr = zerr.With(ErrUnknownToken, "token", name)
			}
			return m
		}
		return tokenText(raw)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func tokenValue(raw any, name string) (Value, error) {
	switch x := raw.(type) {
	case string:
		return String(x), nil
	case int:
		return Num(float64(x)), nil
	case int64:
		return Num(float64(x)), nil
	case float64:
		return Num(x), nil
	case bool:
		return String(strconv.FormatBool(x)), nil
	case *Keyframes:
		return Anim(x), nil
	default:
		err := malformed(fmt.Sprintf("token %q has unsupported type %T", name, raw), "")
		return Value{}, zerr.With(err, "value_type", fmt.Sprintf("%T", raw))
	}
}

func tokenText(raw any) string {
	switch x := raw.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return FormatFloat(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(raw)
	}
}
