// Package linters provides declaration linters. Linters only report; they never change output.
package linters

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
)

const logicalDocs = "Please use logical properties and values instead. " +
	"For more information: https://developer.mozilla.org/en-US/docs/Web/CSS/CSS_Logical_Properties."

var registry = map[string]css.Linter{
	"content-quotes":      ContentQuotes,
	"hashed-animation":    HashedAnimation,
	"logical-properties":  LogicalProperties,
	"legacy-not-selector": LegacyNotSelector,
	"parent-selector":     ParentSelector,
	"syntax":              Syntax,
}

// Names returns the registered linter names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByName returns the linters registered under names, in order.
func ByName(names ...string) ([]css.Linter, error) {
	out := make([]css.Linter, 0, len(names))
	for _, name := range names {
		l, ok := registry[name]
		if !ok {
			return nil, zerr.With(domain.ErrUnknownLinter, "linter", name)
		}
		out = append(out, l)
	}
	return out, nil
}

// Dev returns the linters enabled by default in dev mode.
func Dev() []css.Linter {
	return []css.Linter{ContentQuotes, HashedAnimation}
}

func warn(rule, msg string) []css.Diagnostic {
	return []css.Diagnostic{{Rule: rule, Message: msg}}
}

var (
	contentValuePattern = regexp.MustCompile(`(attr|counters?|url|(((repeating-)?(linear|radial))|conic)-gradient)\(|(no-)?(open|close)-quote`)
	contentKeywords     = []string{"normal", "none", "initial", "inherit", "unset"}
)

// ContentQuotes reports content values that are neither a keyword, a function nor a quoted string.
func ContentQuotes(property, value string, _ css.LintInfo) []css.Diagnostic {
	if property != "content" {
		return nil
	}
	if slices.Contains(contentKeywords, value) || contentValuePattern.MatchString(value) {
		return nil
	}
	if len(value) >= 2 && value[0] == value[len(value)-1] && (value[0] == '"' || value[0] == '\'') {
		return nil
	}
	return warn("content-quotes", fmt.Sprintf(
		"You seem to be using a value for 'content' without quotes, try replacing it with `content: '\"%s\"'`.", value))
}

// HashedAnimation reports animation shorthands inside hashed styles, whose keyframes names are not scoped.
func HashedAnimation(property, value string, info css.LintInfo) []css.Diagnostic {
	if property != "animation" || info.HashID == "" || value == "none" {
		return nil
	}
	return warn("hashed-animation", fmt.Sprintf(
		"You seem to be using hashed animation '%s', in which case 'animationName' with Keyframe as value is recommended.", value))
}

var physicalProperties = []string{
	"margin-left", "margin-right", "padding-left", "padding-right", "left", "right",
	"border-left", "border-left-width", "border-left-style", "border-left-color",
	"border-right", "border-right-width", "border-right-style", "border-right-color",
	"border-top-left-radius", "border-top-right-radius",
	"border-bottom-left-radius", "border-bottom-right-radius",
}

// LogicalProperties reports physical properties and values that break in right-to-left layouts.
func LogicalProperties(property, value string, _ css.LintInfo) []css.Diagnostic {
	const rule = "logical-properties"

	switch {
	case slices.Contains(physicalProperties, property):
		return warn(rule, fmt.Sprintf(
			"You seem to be using non-logical property '%s' which is not compatible with RTL mode. %s", property, logicalDocs))

	case property == "margin" || property == "padding" || property == "border-width" || property == "border-style":
		parts := strings.Fields(value)
		if len(parts) == 4 && parts[1] != parts[3] {
			return warn(rule, fmt.Sprintf(
				"You seem to be using '%[1]s' property with different left %[1]s and right %[1]s, which is not compatible with RTL mode. %[2]s",
				property, logicalDocs))
		}

	case property == "clear" || property == "text-align":
		if value == "left" || value == "right" {
			return warn(rule, fmt.Sprintf(
				"You seem to be using non-logical value '%s' of %s, which is not compatible with RTL mode. %s", value, property, logicalDocs))
		}

	case property == "border-radius":
		if asymmetricRadius(value) {
			return warn(rule, fmt.Sprintf(
				"You seem to be using non-logical value '%s' of %s, which is not compatible with RTL mode. %s", value, property, logicalDocs))
		}
	}
	return nil
}

func asymmetricRadius(value string) bool {
	for group := range strings.SplitSeq(value, "/") {
		r := strings.Fields(group)
		switch {
		case len(r) >= 2 && r[0] != r[1]:
			return true
		case len(r) == 3 && r[1] != r[2]:
			return true
		case len(r) == 4 && r[2] != r[3]:
			return true
		}
	}
	return false
}

var notPattern = regexp.MustCompile(`:not\([^)]*\)`)

// LegacyNotSelector reports :not() arguments that combine several simple selectors.
func LegacyNotSelector(_, _ string, info css.LintInfo) []css.Diagnostic {
	for _, not := range notPattern.FindAllString(info.SelectorPath(), -1) {
		if len(compoundParts(not[len(":not(") : len(not)-1])) > 1 {
			return warn("legacy-not-selector", "Concat ':not' selector not support in legacy browsers.")
		}
	}
	return nil
}

// compoundParts splits a compound selector such as h1#a.b[x] into h1, #a, .b and [x].
func compoundParts(sel string) []string {
	var parts []string
	start := 0
	depth := 0
	for i, r := range sel {
		switch {
		case r == '[':
			if depth == 0 && i > start {
				parts = append(parts, sel[start:i])
				start = i
			}
			depth++
		case r == ']':
			depth--
			if depth == 0 {
				parts = append(parts, sel[start:i+1])
				start = i + 1
			}
		case depth == 0 && (r == '.' || r == '#') && i > start:
			parts = append(parts, sel[start:i])
			start = i
		}
	}
	if start < len(sel) {
		parts = append(parts, sel[start:])
	}
	return parts
}

// ParentSelector reports selectors that use the parent reference more than once.
func ParentSelector(_, _ string, info css.LintInfo) []css.Diagnostic {
	for _, sel := range info.ParentSelectors {
		for item := range strings.SplitSeq(sel, ",") {
			if strings.Count(item, "&") > 1 {
				return warn("parent-selector", "Should not use more than one `&` in a selector.")
			}
		}
	}
	return nil
}
