package css

import (
	"regexp"
	"strings"
)

// HashPriority selects how the hash class participates in specificity.
type HashPriority string

const (
	// PriorityLow wraps the hash class in :where() so it adds no specificity.
	PriorityLow HashPriority = "low"
	// PriorityHigh uses the bare hash class.
	PriorityHigh HashPriority = "high"
)

var (
	leadingElement = regexp.MustCompile(`^\w+`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// HashSelector returns the selector that scopes rules to hashID.
func HashSelector(hashID string, priority HashPriority) string {
	if priority == PriorityHigh {
		return "." + hashID
	}
	return ":where(." + hashID + ")"
}

// InjectSelectorHash scopes every top-level comma-separated selector in key to hashID.
// Commas inside parentheses or brackets do not separate selectors.
// The hash selector is placed right after a leading element name (div:where(.h).a),
// otherwise in front of the first compound selector.
func InjectSelectorHash(key, hashID string, priority HashPriority) string {
	if hashID == "" {
		return key
	}
	hash := HashSelector(hashID, priority)
	parts := splitSelectors(key)
	for i, part := range parts {
		trimmed := strings.TrimSpace(part)
		var fields []string
		if trimmed != "" {
			fields = whitespace.Split(trimmed, -1)
		}
		first := ""
		if len(fields) > 0 {
			first = fields[0]
		}
		element := leadingElement.FindString(first)
		first = element + hash + first[len(element):]
		if len(fields) > 1 {
			parts[i] = first + " " + strings.Join(fields[1:], " ")
		} else {
			parts[i] = first
		}
	}
	return strings.Join(parts, ",")
}

// splitSelectors splits a selector list on top-level commas.
// Commas inside parentheses or attribute brackets do not split.
func splitSelectors(key string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, key[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, key[start:])
}

// resolveSelectors combines a rule key with its resolved parent selectors.
// '&' is replaced by the parent; keys without '&' become descendants of it.
func resolveSelectors(parents []string, key string) []string {
	if len(parents) == 0 {
		parents = []string{""}
	}
	own := splitSelectors(key)
	out := make([]string, 0, len(own)*len(parents))
	for _, sel := range own {
		sel = strings.TrimSpace(sel)
		for _, parent := range parents {
			var resolved string
			switch {
			case strings.Contains(sel, "&"):
				resolved = strings.ReplaceAll(sel, "&", parent)
			case parent == "":
				resolved = sel
			default:
				resolved = parent + " " + sel
			}
			out = append(out, strings.TrimSpace(resolved))
		}
	}
	return out
}

func joinSelectors(selectors []string) string {
	return strings.Join(selectors, ",")
}

func isKeyframesRule(key string) bool {
	k := strings.TrimSpace(key)
	return strings.HasPrefix(k, "@keyframes") || strings.HasPrefix(k, "@-webkit-keyframes")
}
