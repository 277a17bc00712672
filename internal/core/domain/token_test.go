package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/cssinjs/internal/core/domain"
)

func TestMergeTokens(t *testing.T) {
	base := domain.NewToken().
		Set("colorPrimary", "#1890ff").
		Set("size", domain.NewToken().Set("sm", 8).Set("md", 16))
	override := domain.NewToken().
		Set("size", domain.NewToken().Set("md", 20)).
		Set("radius", 4)

	merged := domain.MergeTokens(base, nil, override)

	assert.Equal(t, []string{"colorPrimary", "size", "radius"}, merged.Keys())

	size, ok := merged.Get("size")
	require.True(t, ok)
	nested := size.(*domain.Token)
	assert.Equal(t, []string{"md"}, nested.Keys(), "nested tokens are replaced, not merged")

	_, ok = base.Lookup("size.md")
	require.True(t, ok)
	v, _ := base.Lookup("size.md")
	assert.Equal(t, 16, v, "inputs are not mutated")
}

func TestFlattenToken(t *testing.T) {
	tok := domain.NewToken().
		Set("nest", domain.NewToken().Set("nothing", 1)).
		Set("primaryColorDisabled", nil).
		Set("ratio", 1.5).
		Set("on", true)

	assert.Equal(t, "nestnothing1primaryColorDisabledundefinedratio1.5ontrue", domain.FlattenToken(tok))
}

func TestToken_Canonical(t *testing.T) {
	a := domain.NewToken().Set("b", 1).Set("a", "x").Set("n", domain.NewToken().Set("y", 2).Set("x", 1))
	b := domain.NewToken().Set("n", domain.NewToken().Set("x", 1).Set("y", 2)).Set("a", "x").Set("b", 1)

	assert.Equal(t, a.Canonical(), b.Canonical())
	assert.Equal(t, `{"a":"x","b":1,"n":{"x":1,"y":2}}`, a.Canonical())

	c := domain.NewToken().Set("a", "1").Set("b", 1)
	d := domain.NewToken().Set("a", 1).Set("b", 1)
	assert.NotEqual(t, c.Canonical(), d.Canonical(), "strings and numbers are distinguished")
}

func TestTokenOf(t *testing.T) {
	tok := domain.TokenOf(map[string]any{
		"z": 1,
		"a": map[string]any{"k": "v"},
	})

	assert.Equal(t, []string{"a", "z"}, tok.Keys())
	v, ok := tok.Lookup("a.k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = tok.Lookup("z.k")
	assert.False(t, ok)
}

func TestToken_MarshalJSON(t *testing.T) {
	tok := domain.NewToken().Set("b", 1).Set("a", domain.NewToken().Set("c", "x"))

	data, err := json.Marshal(tok)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":1,"a":{"c":"x"}}`, string(data))
	assert.Equal(t, `{"b":1,"a":{"c":"x"}}`, string(data), "insertion order is kept")
}

func TestTheme(t *testing.T) {
	derive := domain.MergeDerivation(func(merged *domain.Token) *domain.Token {
		out := merged.Clone()
		v, _ := merged.Get("primaryColor")
		return out.Set("primaryColorDisabled", v)
	})

	t1 := domain.NewTheme(derive)
	t2 := domain.NewTheme(derive)
	assert.NotEqual(t, t1.ID(), t2.ID(), "identity is per construction")

	got := t1.DerivedToken(domain.NewToken().Set("primaryColor", "#1890ff"))
	v, ok := got.Get("primaryColorDisabled")
	require.True(t, ok)
	assert.Equal(t, "#1890ff", v)
}

func TestAliasDerivation(t *testing.T) {
	rules := domain.NewToken().
		Set("colorText", "$colorPrimary").
		Set("colorLink", "$colorText").
		Set("borderStyle", "solid")
	theme := domain.NewTheme(domain.AliasDerivation(rules))

	got := theme.DerivedToken(domain.NewToken().Set("colorPrimary", "#000"), domain.NewToken().Set("colorPrimary", "#111"))

	assert.Equal(t, []string{"colorPrimary", "colorText", "colorLink", "borderStyle"}, got.Keys())
	v, _ := got.Get("colorLink")
	assert.Equal(t, "#111", v)
}

func TestCachePath(t *testing.T) {
	a := domain.NewCachePath("token", "t1", "abc")
	b := domain.NewCachePath("token", "t1", "abc")
	c := domain.NewCachePath("token", "t1abc")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(c))
	assert.Equal(t, "token|t1|abc", a.String())
	assert.Equal(t, 4, a.Append("x").Len())
	assert.Equal(t, 3, a.Len(), "append does not mutate")
}
