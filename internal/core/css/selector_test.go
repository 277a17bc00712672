package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/cssinjs/internal/core/css"
)

func TestInjectSelectorHash(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		hashID   string
		priority css.HashPriority
		want     string
	}{
		{name: "no hash", key: ".a", want: ".a"},
		{name: "class", key: ".a", hashID: "h", want: ":where(.h).a"},
		{name: "element keeps its position", key: "div.a", hashID: "h", want: "div:where(.h).a"},
		{name: "descendant", key: ".c  .d", hashID: "h", want: ":where(.h).c .d"},
		{name: "list", key: ".a, .b", hashID: "h", want: ":where(.h).a,:where(.h).b"},
		{name: "commas inside parentheses", key: ":is(.a,.b)", hashID: "h", want: ":where(.h):is(.a,.b)"},
		{name: "pseudo list then list", key: ".x:not(.a, .b), .c", hashID: "h", want: ":where(.h).x:not(.a, .b),:where(.h).c"},
		{name: "commas inside attribute", key: "[title='a,b']", hashID: "h", want: ":where(.h)[title='a,b']"},
		{name: "ampersand", key: "&", hashID: "h", want: ":where(.h)&"},
		{name: "empty", key: "", hashID: "h", want: ":where(.h)"},
		{name: "high priority", key: "span", hashID: "h", priority: css.PriorityHigh, want: "span.h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, css.InjectSelectorHash(tt.key, tt.hashID, tt.priority))
		})
	}
}

func TestPropertyName(t *testing.T) {
	tests := map[string]string{
		"backgroundColor": "background-color",
		"color":           "color",
		"border-width":    "border-width",
		"WebkitLineClamp": "-webkit-line-clamp",
		"msGridRow":       "-ms-grid-row",
		"--myVar":         "--myVar",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, css.PropertyName(in))
		})
	}
}

func TestUnitless(t *testing.T) {
	assert.True(t, css.Unitless("lineHeight"))
	assert.True(t, css.Unitless("z-index"))
	assert.True(t, css.Unitless("WebkitLineClamp"))
	assert.False(t, css.Unitless("width"))
}

func TestKeyframes_GetName(t *testing.T) {
	k := css.NewKeyframes("fade", nil)
	assert.Equal(t, "fade", k.GetName(""))
	assert.Equal(t, "abc-fade", k.GetName("abc"))
}
