package linters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/cssinjs/internal/adapters/linters"
	"go.trai.ch/cssinjs/internal/core/css"
)

func TestContentQuotes(t *testing.T) {
	tests := []struct {
		value string
		warn  bool
	}{
		{value: `"x"`},
		{value: `'x'`},
		{value: "none"},
		{value: "attr(data-x)"},
		{value: "open-quote"},
		{value: "linear-gradient(red, blue)"},
		{value: "x", warn: true},
		{value: `"x'`, warn: true},
		{value: `"`, warn: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := linters.ContentQuotes("content", tt.value, css.LintInfo{})
			if tt.warn {
				require.Len(t, got, 1)
				assert.Equal(t, "content-quotes", got[0].Rule)
				return
			}
			assert.Empty(t, got)
		})
	}

	assert.Empty(t, linters.ContentQuotes("color", "x", css.LintInfo{}))
}

func TestHashedAnimation(t *testing.T) {
	assert.Len(t, linters.HashedAnimation("animation", "spin 1s", css.LintInfo{HashID: "css-h"}), 1)
	assert.Empty(t, linters.HashedAnimation("animation", "none", css.LintInfo{HashID: "css-h"}))
	assert.Empty(t, linters.HashedAnimation("animation", "spin 1s", css.LintInfo{}))
	assert.Empty(t, linters.HashedAnimation("animation-name", "spin", css.LintInfo{HashID: "css-h"}))
}

func TestLogicalProperties(t *testing.T) {
	tests := []struct {
		property string
		value    string
		warn     bool
	}{
		{property: "margin-left", value: "1px", warn: true},
		{property: "border-top-right-radius", value: "2px", warn: true},
		{property: "margin-inline-start", value: "1px"},
		{property: "margin", value: "1px 2px 3px 4px", warn: true},
		{property: "margin", value: "1px 2px 3px 2px"},
		{property: "padding", value: "1px 2px"},
		{property: "text-align", value: "left", warn: true},
		{property: "text-align", value: "start"},
		{property: "clear", value: "right", warn: true},
		{property: "border-radius", value: "2px 4px", warn: true},
		{property: "border-radius", value: "2px 2px 4px", warn: true},
		{property: "border-radius", value: "2px 2px 4px 2px", warn: true},
		{property: "border-radius", value: "2px 2px 4px 4px"},
		{property: "border-radius", value: "2px / 4px 2px", warn: true},
		{property: "border-radius", value: "2px"},
	}

	for _, tt := range tests {
		t.Run(tt.property+": "+tt.value, func(t *testing.T) {
			got := linters.LogicalProperties(tt.property, tt.value, css.LintInfo{})
			if tt.warn {
				require.Len(t, got, 1)
				assert.Equal(t, "logical-properties", got[0].Rule)
				return
			}
			assert.Empty(t, got)
		})
	}
}

func TestLegacyNotSelector(t *testing.T) {
	tests := []struct {
		name    string
		parents []string
		warn    bool
	}{
		{name: "simple class", parents: []string{".a", "&:not(.b)"}},
		{name: "attribute only", parents: []string{".a:not([disabled])"}},
		{name: "element and id", parents: []string{".a", "&:not(h1#x)"}, warn: true},
		{name: "two classes", parents: []string{":not(.b.c)"}, warn: true},
		{name: "class and attribute", parents: []string{":not(.b[x])"}, warn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linters.LegacyNotSelector("color", "red", css.LintInfo{ParentSelectors: tt.parents})
			if tt.warn {
				assert.Len(t, got, 1)
				return
			}
			assert.Empty(t, got)
		})
	}
}

func TestParentSelector(t *testing.T) {
	assert.Empty(t, linters.ParentSelector("color", "red", css.LintInfo{ParentSelectors: []string{".a", "&:hover, & .b"}}))
	assert.Len(t, linters.ParentSelector("color", "red", css.LintInfo{ParentSelectors: []string{".a", "& + &"}}), 1)
}

func TestSyntax(t *testing.T) {
	assert.Empty(t, linters.Syntax("color", "red", css.LintInfo{}))
	assert.Empty(t, linters.Syntax("transform", "rotate(360deg)", css.LintInfo{}))
	assert.Empty(t, linters.Syntax("--gap", "4px", css.LintInfo{}))

	got := linters.Syntax("content", "\"abc\ndef", css.LintInfo{})
	require.NotEmpty(t, got)
	assert.Equal(t, "syntax", got[0].Rule)
}

func TestByName(t *testing.T) {
	got, err := linters.ByName("syntax", "parent-selector")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = linters.ByName("missing")
	assert.ErrorContains(t, err, "unknown linter")

	assert.Equal(t, []string{
		"content-quotes", "hashed-animation", "legacy-not-selector",
		"logical-properties", "parent-selector", "syntax",
	}, linters.Names())
	assert.Len(t, linters.Dev(), 2)
}

func TestLinters_WithSerializer(t *testing.T) {
	node := css.Object{
		css.Nest(".a", css.Object{
			css.Decl("marginLeft", 4),
			css.Decl("content", "x"),
			css.Nest("&:not(h1.b)", css.Object{css.Decl("textAlign", "start")}),
		}),
	}
	res, err := css.Serialize(node, css.Config{
		HashID:  "css-h",
		Path:    "style|Button",
		Linters: []css.Linter{linters.LogicalProperties, linters.ContentQuotes, linters.LegacyNotSelector},
	})
	require.NoError(t, err)

	var rules []string
	for _, d := range res.Diagnostics {
		rules = append(rules, d.Rule)
		assert.Equal(t, "style|Button", d.Path)
	}
	assert.Equal(t, []string{"logical-properties", "content-quotes", "legacy-not-selector"}, rules)
}
