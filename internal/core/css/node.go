// Package css holds the style tree and the serializer that turns it into CSS text.
//
// A style tree is built from four node shapes: Object (declarations and nested
// rules, in authoring order), List (concatenated nodes), Raw (verbatim CSS,
// only valid at the root) and *Keyframes (an animation definition).
package css

import (
	"math"
	"strconv"
)

// Node is one element of a style tree.
type Node interface {
	node()
}

// Object is an ordered set of declarations and nested rules.
type Object []Prop

// List concatenates its nodes in order. Nil entries are skipped.
type List []Node

// Raw is CSS text emitted verbatim. It is only accepted at the root of a tree.
type Raw string

func (Object) node()     {}
func (List) node()       {}
func (Raw) node()        {}
func (*Keyframes) node() {}

// Prop is a single entry of an Object.
// It is a declaration when Values is set and a nested rule when Child is set.
type Prop struct {
	Key    string
	Values []Value
	Child  Node
}

// IsDecl reports whether the prop is a declaration.
func (p Prop) IsDecl() bool {
	return p.Child == nil && len(p.Values) > 0
}

// Scalar lists the Go types accepted as declaration values.
type Scalar interface {
	string | int | int64 | float64 | *Keyframes | Value
}

// Decl builds a declaration prop.
func Decl[V Scalar](key string, v V) Prop {
	return Prop{Key: key, Values: []Value{valueOf(v)}}
}

// Multi builds a declaration that is emitted once per value, in order.
// It is used for fallbacks such as display:-webkit-box followed by display:flex.
func Multi[V Scalar](key string, vs ...V) Prop {
	values := make([]Value, len(vs))
	for i, v := range vs {
		values[i] = valueOf(v)
	}
	return Prop{Key: key, Values: values}
}

// Nest builds a nested rule prop. The selector may contain '&', commas or be an at-rule.
func Nest(selector string, child Node) Prop {
	return Prop{Key: selector, Child: child}
}

func valueOf[V Scalar](v V) Value {
	switch x := any(v).(type) {
	case string:
		return String(x)
	case int:
		return Num(float64(x))
	case int64:
		return Num(float64(x))
	case float64:
		return Num(x)
	case *Keyframes:
		return Anim(x)
	case Value:
		return x
	}
	return Value{}
}

type valueKind uint8

const (
	kindInvalid valueKind = iota
	kindString
	kindNumber
	kindKeyframes
)

// Value is a declaration value: a string, a number or a keyframes reference.
// The zero Value is invalid and rejected by the serializer.
type Value struct {
	kind      valueKind
	str       string
	num       float64
	kf        *Keyframes
	skipCheck bool
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: kindString, str: s}
}

// Num returns a numeric value. Numbers receive a px unit unless the property is unit-less or the value is zero.
func Num(n float64) Value {
	return Value{kind: kindNumber, num: n}
}

// Anim returns a value that expands to the keyframes' scoped name.
func Anim(k *Keyframes) Value {
	return Value{kind: kindKeyframes, kf: k}
}

// SkipCheck returns a copy of v that linters do not inspect.
func (v Value) SkipCheck() Value {
	v.skipCheck = true
	return v
}

// Skipped reports whether linters ignore this value.
func (v Value) Skipped() bool {
	return v.skipCheck
}

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.kind == kindString }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.kind == kindNumber }

// Str returns the string payload, or "" for non-string values.
func (v Value) Str() string { return v.str }

// Number returns the numeric payload, or 0 for non-numeric values.
func (v Value) Number() float64 { return v.num }

// Keyframes returns the referenced keyframes, or nil.
func (v Value) Keyframes() *Keyframes { return v.kf }

// Text renders the value the way it appears after the colon of a declaration.
func (v Value) Text(property, hashID string) string {
	switch v.kind {
	case kindString:
		return v.str
	case kindNumber:
		return formatNumber(property, v.num)
	case kindKeyframes:
		if v.kf == nil {
			return ""
		}
		return v.kf.GetName(hashID)
	default:
		return ""
	}
}

func (v Value) typeName() string {
	switch v.kind {
	case kindString:
		return "string"
	case kindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return "non-finite number"
		}
		return "number"
	case kindKeyframes:
		if v.kf == nil {
			return "nil keyframes"
		}
		return "keyframes"
	default:
		return "zero value"
	}
}

func (v Value) valid() bool {
	switch v.kind {
	case kindString:
		return true
	case kindNumber:
		return !math.IsNaN(v.num) && !math.IsInf(v.num, 0)
	case kindKeyframes:
		return v.kf != nil
	default:
		return false
	}
}

// FormatFloat renders n without exponent or trailing zeros.
func FormatFloat(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
