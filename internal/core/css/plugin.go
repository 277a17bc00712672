package css

import "strings"

// Transformer rewrites each Object of a tree before it is serialized.
// Implementations must be pure: they return a new Object and leave the input untouched.
type Transformer interface {
	Visit(obj Object) Object
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(obj Object) Object

// Visit calls f(obj).
func (f TransformerFunc) Visit(obj Object) Object {
	return f(obj)
}

// LintInfo describes where a declaration sits in the tree.
type LintInfo struct {
	// Path is the cache path of the style being generated, for reporting.
	Path string
	// HashID is the scope hash of the style, empty for unhashed styles.
	HashID string
	// ParentSelectors holds the rule keys from the root down to the declaration, unresolved.
	ParentSelectors []string
}

// Linter inspects one declaration and returns advisory diagnostics.
// Linters see the kebab-case property name and the rendered value.
type Linter func(property, value string, info LintInfo) []Diagnostic

// Diagnostic is an advisory finding. It never changes the emitted CSS.
type Diagnostic struct {
	Rule     string
	Message  string
	Path     string
	Selector string
}

// String formats the diagnostic for a log line.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Path != "" {
		b.WriteString("Error in ")
		b.WriteString(d.Path)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	if d.Selector != "" {
		b.WriteString(" Selector: ")
		b.WriteString(d.Selector)
	}
	return b.String()
}

// SelectorPath resolves the parent selectors of a declaration into one selector string.
func (i LintInfo) SelectorPath() string {
	path := ""
	for _, sel := range i.ParentSelectors {
		switch {
		case path == "":
			path = sel
		case strings.Contains(sel, "&"):
			path = strings.ReplaceAll(sel, "&", path)
		default:
			path = path + " " + sel
		}
	}
	return path
}
