package transformers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/cssinjs/internal/adapters/transformers"
	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
)

func serialize(t *testing.T, node css.Node, ts ...css.Transformer) string {
	t.Helper()
	res, err := css.Serialize(node, css.Config{Transformers: ts})
	require.NoError(t, err)
	return res.CSS
}

func TestLegacyLogicalProperties(t *testing.T) {
	tests := []struct {
		name string
		decl css.Prop
		want string
	}{
		{
			name: "single value fills both sides",
			decl: css.Decl("marginBlock", 1),
			want: ".a{margin-top:1px;margin-bottom:1px;}",
		},
		{
			name: "two values",
			decl: css.Decl("paddingInline", "1px 2px"),
			want: ".a{padding-left:1px;padding-right:2px;}",
		},
		{
			name: "single side",
			decl: css.Decl("insetInlineEnd", "4px"),
			want: ".a{right:4px;}",
		},
		{
			name: "inset follows shorthand rules",
			decl: css.Decl("inset", "1px 2px"),
			want: ".a{top:1px;right:2px;bottom:1px;left:2px;}",
		},
		{
			name: "inset with three values",
			decl: css.Decl("inset", "1px 2px 3px"),
			want: ".a{top:1px;right:2px;bottom:3px;left:2px;}",
		},
		{
			name: "calc stays whole",
			decl: css.Decl("marginInline", "calc(1px + 2px) 3px"),
			want: ".a{margin-left:calc(1px + 2px);margin-right:3px;}",
		},
		{
			name: "important is kept",
			decl: css.Decl("marginBlock", "1px 2px !important"),
			want: ".a{margin-top:1px !important;margin-bottom:2px !important;}",
		},
		{
			name: "border shorthand is not split",
			decl: css.Decl("borderInline", "1px solid red"),
			want: ".a{border-left:1px solid red;border-right:1px solid red;}",
		},
		{
			name: "radius",
			decl: css.Decl("borderStartEndRadius", 2),
			want: ".a{border-top-right-radius:2px;}",
		},
		{
			name: "kebab-case keys are recognized",
			decl: css.Decl("margin-inline-start", 3),
			want: ".a{margin-left:3px;}",
		},
		{
			name: "physical properties are untouched",
			decl: css.Decl("marginTop", 1),
			want: ".a{margin-top:1px;}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := css.Object{css.Nest(".a", css.Object{tt.decl})}
			assert.Equal(t, tt.want, serialize(t, node, transformers.LegacyLogicalProperties))
		})
	}
}

func TestLegacyLogicalProperties_SkipsLinters(t *testing.T) {
	var seen []string
	linter := func(property, _ string, _ css.LintInfo) []css.Diagnostic {
		seen = append(seen, property)
		return nil
	}

	_, err := css.Serialize(
		css.Object{css.Nest(".a", css.Object{css.Decl("marginInline", 1), css.Decl("color", "red")})},
		css.Config{Transformers: []css.Transformer{transformers.LegacyLogicalProperties}, Linters: []css.Linter{linter}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"color"}, seen)
}

func TestPx2Rem(t *testing.T) {
	tests := []struct {
		name string
		opts domain.Px2RemOptions
		node css.Node
		want string
	}{
		{
			name: "numbers and strings",
			opts: domain.DefaultPx2RemOptions(),
			node: css.Object{css.Nest(".a", css.Object{
				css.Decl("fontSize", 32),
				css.Decl("padding", "10px 13px"),
				css.Decl("lineHeight", 1.5),
				css.Decl("margin", 0),
			})},
			want: ".a{font-size:2rem;padding:0.625rem 0.8125rem;line-height:1.5;margin:0;}",
		},
		{
			name: "one pixel and below stay",
			opts: domain.DefaultPx2RemOptions(),
			node: css.Object{css.Nest(".a", css.Object{css.Decl("border", "1px solid red"), css.Decl("width", 0.5)})},
			want: ".a{border:1px solid red;width:0.5px;}",
		},
		{
			name: "url and var are skipped",
			opts: domain.DefaultPx2RemOptions(),
			node: css.Object{css.Nest(".a", css.Object{
				css.Decl("background", "url(a-16px.png)"),
				css.Decl("width", "var(--w-16px, 16px)"),
			})},
			want: ".a{background:url(a-16px.png);width:var(--w-16px, 16px);}",
		},
		{
			name: "precision",
			opts: domain.Px2RemOptions{RootValue: 16, Precision: 2},
			node: css.Object{css.Nest(".a", css.Object{css.Decl("width", 13)})},
			want: ".a{width:0.81rem;}",
		},
		{
			name: "custom root",
			opts: domain.Px2RemOptions{RootValue: 10, Precision: 5},
			node: css.Object{css.Nest(".a", css.Object{css.Decl("width", 15)})},
			want: ".a{width:1.5rem;}",
		},
		{
			name: "media queries are kept by default",
			opts: domain.DefaultPx2RemOptions(),
			node: css.Object{css.Nest("@media (min-width: 320px)", css.Object{
				css.Nest(".a", css.Object{css.Decl("width", 32)}),
			})},
			want: "@media (min-width: 320px){.a{width:2rem;}}",
		},
		{
			name: "media queries are converted on request",
			opts: domain.Px2RemOptions{RootValue: 16, Precision: 5, MediaQuery: true},
			node: css.Object{css.Nest("@media (min-width: 320px)", css.Object{
				css.Nest(".a", css.Object{css.Decl("width", 32)}),
			})},
			want: "@media (min-width: 20rem){.a{width:2rem;}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serialize(t, tt.node, transformers.Px2Rem(tt.opts)))
		})
	}
}

func TestByName(t *testing.T) {
	ts, err := transformers.ByName([]string{"px2rem", "legacy-logical-properties"}, domain.DefaultPx2RemOptions())
	require.NoError(t, err)
	require.Len(t, ts, 2)

	node := css.Object{css.Nest(".a", css.Object{css.Decl("marginInline", 32)})}
	assert.Equal(t, ".a{margin-left:2rem;margin-right:2rem;}", serialize(t, node, ts[1], ts[0]))

	_, err = transformers.ByName([]string{"nope"}, domain.Px2RemOptions{})
	assert.ErrorContains(t, err, "unknown transformer")
}
