package css

import (
	"fmt"
	"strings"
)

// Config controls a serialization pass.
type Config struct {
	// HashID scopes every root selector when non-empty.
	HashID string
	// HashPriority selects :where(.hash) (low, the default) or .hash (high).
	HashPriority HashPriority
	// Path identifies the style in diagnostics.
	Path string
	// Transformers run in order on every Object before it is serialized.
	Transformers []Transformer
	// Linters run on every declaration that is not marked SkipCheck.
	Linters []Linter
}

// Effect is a standalone style produced alongside the main CSS, such as a @keyframes block.
type Effect struct {
	Name string `json:"name"`
	CSS  string `json:"css"`
}

// Result is the output of a serialization pass.
type Result struct {
	// CSS is the rule text of the tree, without keyframes blocks.
	CSS string
	// Effects holds one @keyframes block per distinct scoped name, in declaration order.
	Effects []Effect
	// Diagnostics holds linter findings and empty keyframes.
	Diagnostics []Diagnostic
}

// String returns the rule text followed by every effect.
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString(r.CSS)
	for _, e := range r.Effects {
		b.WriteString(e.CSS)
	}
	return b.String()
}

type scope struct {
	selectors  []string
	chain      []string
	root       bool
	injectHash bool
}

type serializer struct {
	cfg      Config
	effects  []Effect
	declared map[string]struct{}
	diags    []Diagnostic
}

// Serialize converts a style tree into CSS text.
// Malformed trees return an error wrapping ErrMalformedStyle; linter findings never fail the pass.
func Serialize(node Node, cfg Config) (*Result, error) {
	s := &serializer{
		cfg:      cfg,
		declared: make(map[string]struct{}),
	}
	out, err := s.tree(node, scope{root: true})
	if err != nil {
		return nil, err
	}
	return &Result{CSS: out, Effects: s.effects, Diagnostics: s.diags}, nil
}

func (s *serializer) tree(node Node, sc scope) (string, error) {
	switch n := node.(type) {
	case nil:
		return "", nil
	case List:
		var b strings.Builder
		for _, child := range n {
			out, err := s.tree(child, sc)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
		}
		return b.String(), nil
	case Raw:
		if !sc.root {
			return "", malformed("raw css is only allowed at the root of a style", joinSelectors(sc.selectors))
		}
		return string(n), nil
	case *Keyframes:
		if n == nil {
			return "", malformed("nil keyframes", joinSelectors(sc.selectors))
		}
		return "", s.keyframes(n)
	case Object:
		return s.object(n, sc)
	default:
		return "", malformed(fmt.Sprintf("unsupported node type %T", node), joinSelectors(sc.selectors))
	}
}

func (s *serializer) transform(obj Object) Object {
	for _, t := range s.cfg.Transformers {
		obj = t.Visit(obj)
	}
	return obj
}

func (s *serializer) object(obj Object, sc scope) (string, error) {
	obj = s.transform(obj)

	var decls, nested strings.Builder
	for _, p := range obj {
		switch {
		case p.Child != nil && len(p.Values) > 0:
			return "", malformed(fmt.Sprintf("property %q has both a value and a nested style", p.Key), joinSelectors(sc.selectors))
		case p.Child != nil:
			out, err := s.rule(p.Key, p.Child, sc)
			if err != nil {
				return "", err
			}
			nested.WriteString(out)
		case len(p.Values) > 0:
			for _, v := range p.Values {
				out, err := s.declaration(p.Key, v, sc)
				if err != nil {
					return "", err
				}
				decls.WriteString(out)
			}
		default:
			return "", malformed(fmt.Sprintf("property %q has neither a value nor a nested style", p.Key), joinSelectors(sc.selectors))
		}
	}

	if decls.Len() == 0 {
		return nested.String(), nil
	}
	selector := joinSelectors(sc.selectors)
	if strings.Trim(selector, ",") == "" {
		return decls.String() + nested.String(), nil
	}
	return selector + "{" + decls.String() + "}" + nested.String(), nil
}

func (s *serializer) rule(key string, child Node, sc scope) (string, error) {
	merged := key
	nextRoot := false
	injectChildren := false

	switch {
	case (sc.root || sc.injectHash) && s.cfg.HashID != "":
		if strings.HasPrefix(strings.TrimSpace(key), "@") {
			injectChildren = true
		} else {
			merged = InjectSelectorHash(key, s.cfg.HashID, s.cfg.HashPriority)
		}
	case sc.root && s.cfg.HashID == "" && (key == "&" || key == ""):
		merged = ""
		nextRoot = true
	}

	chain := append(append([]string(nil), sc.chain...), merged)

	if strings.HasPrefix(strings.TrimSpace(merged), "@") {
		inner := scope{selectors: sc.selectors, chain: chain, injectHash: injectChildren}
		if isKeyframesRule(merged) {
			inner.selectors = nil
			inner.injectHash = false
		}
		body, err := s.tree(child, inner)
		if err != nil {
			return "", err
		}
		if body == "" {
			return "", nil
		}
		return strings.TrimSpace(merged) + "{" + body + "}", nil
	}

	return s.tree(child, scope{
		selectors: resolveSelectors(sc.selectors, merged),
		chain:     chain,
		root:      nextRoot,
	})
}

func (s *serializer) declaration(key string, v Value, sc scope) (string, error) {
	property := PropertyName(key)
	if !v.valid() {
		err := malformed(fmt.Sprintf("invalid value for %q: %s", key, v.typeName()), joinSelectors(sc.selectors))
		return "", err
	}
	// A keyframes value carries its definition, so the block is emitted with the rule.
	if v.kind == kindKeyframes {
		if err := s.keyframes(v.kf); err != nil {
			return "", err
		}
	}
	text := v.Text(property, s.cfg.HashID)
	if !v.skipCheck {
		s.lint(property, text, sc)
	}
	return property + ":" + text + ";", nil
}

func (s *serializer) lint(property, value string, sc scope) {
	if len(s.cfg.Linters) == 0 {
		return
	}
	info := LintInfo{
		Path:            s.cfg.Path,
		HashID:          s.cfg.HashID,
		ParentSelectors: sc.chain,
	}
	for _, l := range s.cfg.Linters {
		for _, d := range l(property, value, info) {
			if d.Path == "" {
				d.Path = s.cfg.Path
			}
			if d.Selector == "" {
				d.Selector = info.SelectorPath()
			}
			s.diags = append(s.diags, d)
		}
	}
}

// keyframes emits a @keyframes block once per scoped name within the pass.
func (s *serializer) keyframes(k *Keyframes) error {
	name := k.GetName(s.cfg.HashID)
	if _, ok := s.declared[name]; ok {
		return nil
	}
	s.declared[name] = struct{}{}

	body, err := s.tree(k.Style, scope{chain: []string{"@keyframes " + name}})
	if err != nil {
		return err
	}
	if body == "" {
		s.diags = append(s.diags, Diagnostic{
			Rule:    "keyframes-empty",
			Message: fmt.Sprintf("Keyframes %q has no steps.", name),
			Path:    s.cfg.Path,
		})
		return nil
	}
	s.effects = append(s.effects, Effect{
		Name: name,
		CSS:  "@keyframes " + name + "{" + body + "}",
	})
	return nil
}
