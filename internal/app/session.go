package app

import (
	"context"

	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
	"go.trai.ch/cssinjs/internal/engine/runtime"
	"go.trai.ch/cssinjs/internal/engine/style"
	"go.trai.ch/cssinjs/internal/engine/token"
)

// session holds the token binding and one style registration per component of a stylefile.
// Registering a changed stylefile moves each slot to its new path and releases components
// that were removed.
type session struct {
	rt      *runtime.Runtime
	theme   *domain.Theme
	derive  string
	binding *token.Binding
	regs    map[string]*style.Registration
}

func newSession(rt *runtime.Runtime, sf *domain.Stylefile) *session {
	return &session{
		rt:      rt,
		theme:   domain.NewTheme(domain.AliasDerivation(sf.Derive)),
		derive:  sf.Derive.Canonical(),
		binding: token.NewBinding(rt),
		regs:    make(map[string]*style.Registration),
	}
}

func (s *session) register(ctx context.Context, tracer ports.Tracer, sf *domain.Stylefile) error {
	// The theme identity is part of the token path, so it only changes with its rules.
	if d := sf.Derive.Canonical(); d != s.derive {
		s.theme = domain.NewTheme(domain.AliasDerivation(sf.Derive))
		s.derive = d
	}

	tok, err := s.binding.Bind(s.theme, sf.Tokens, token.Options{Salt: sf.Options.Salt, Override: sf.Override})
	if err != nil {
		return err
	}

	nodes, err := interpolate(ctx, tracer, sf.Components, tok)
	if err != nil {
		return err
	}

	live := make(map[string]struct{}, len(sf.Components))
	for i, comp := range sf.Components {
		reg, ok := s.regs[comp.Name]
		if !ok {
			reg = style.NewRegistration(s.rt)
			s.regs[comp.Name] = reg
		}
		live[comp.Name] = struct{}{}

		node := nodes[i]
		if _, err := reg.Register(componentInfo(sf.Options, comp, tok), func() (css.Node, error) {
			return node, nil
		}); err != nil {
			return zerr.With(err, "component", comp.Name)
		}
	}

	for name, reg := range s.regs {
		if _, ok := live[name]; !ok {
			reg.Release()
			delete(s.regs, name)
		}
	}
	return nil
}

func (s *session) release() {
	for _, reg := range s.regs {
		reg.Release()
	}
	s.binding.Release()
}

// componentInfo scopes a component with the token hash unless it is global or hashing is off.
func componentInfo(opts domain.StyleOptions, comp domain.Component, tok *domain.DerivedToken) style.Info {
	info := style.Info{Token: tok, Path: comp.Path, Order: comp.Order}
	if comp.Global {
		info.Token = nil
		return info
	}
	if opts.Hashed {
		info.HashID = tok.HashID
	}
	return info
}
