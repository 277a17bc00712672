package runtime_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/cssinjs/internal/adapters/dom"
	"go.trai.ch/cssinjs/internal/core/css"
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/engine/cache"
	"go.trai.ch/cssinjs/internal/engine/runtime"
)

func TestNew_Defaults(t *testing.T) {
	rt := runtime.New()
	opts := rt.Options()

	assert.True(t, opts.AutoClear)
	assert.Equal(t, css.PriorityLow, opts.HashPriority)
	assert.True(t, opts.ServerSide(), "no container means server side")
	assert.Nil(t, rt.Container())
	assert.NotEmpty(t, rt.ID())
	assert.NotEqual(t, rt.ID(), runtime.New().ID())
	assert.Equal(t, runtime.HashPrefix, rt.HashPrefix())
	assert.Equal(t, "acqbnw", rt.Hasher().Hash("a"))
}

func TestOptions_ServerSide(t *testing.T) {
	doc := dom.NewDocument()

	assert.False(t, runtime.New(runtime.WithContainer(doc)).Options().ServerSide())
	assert.True(t, runtime.New(runtime.WithContainer(doc), runtime.WithMock(domain.MockServer)).Options().ServerSide())
	assert.Nil(t, runtime.New(runtime.WithContainer(doc), runtime.WithMock(domain.MockServer)).Container())
}

func TestNew_Rehydrates(t *testing.T) {
	doc, err := dom.ParseDocument(strings.NewReader(`<html><head></head><body>` +
		`<style data-css-hash="a">.a{}</style><style data-css-hash="a">.a{}</style>` +
		`</body></html>`))
	require.NoError(t, err)

	rt := runtime.New(runtime.WithContainer(doc))

	styles := doc.Styles()
	require.Len(t, styles, 1)
	assert.Equal(t, rt.ID(), styles[0].Owner)
}

func TestNew_ServerDoesNotRehydrate(t *testing.T) {
	doc, err := dom.ParseDocument(strings.NewReader(`<html><head></head><body>` +
		`<style data-css-hash="a">.a{}</style><style data-css-hash="a">.a{}</style>` +
		`</body></html>`))
	require.NoError(t, err)

	runtime.New(runtime.WithContainer(doc), runtime.WithMock(domain.MockServer))

	assert.Len(t, doc.Styles(), 2)
}

func TestClaimEffect(t *testing.T) {
	rt := runtime.New()

	assert.True(t, rt.ClaimEffect("fade"))
	assert.False(t, rt.ClaimEffect("fade"))
	assert.True(t, rt.ClaimEffect("spin"))

	rt.Reset()
	assert.True(t, rt.ClaimEffect("fade"), "reset forgets claimed effects")
}

func TestClaimReload(t *testing.T) {
	rt := runtime.New()
	p := domain.NewCachePath("style", "a")

	assert.False(t, rt.ClaimReload(p), "no reload outside hmr")

	rt.MarkHMR()
	assert.True(t, rt.HMR())
	assert.True(t, rt.ClaimReload(p))
	assert.False(t, rt.ClaimReload(p))

	rt.Flush()
	assert.False(t, rt.HMR())
	assert.False(t, rt.ClaimReload(p))
}

func stylePair(rec *domain.StyleRecord) cache.Updater[*domain.StyleRecord] {
	return func(prev *cache.Pair[*domain.StyleRecord]) *cache.Pair[*domain.StyleRecord] {
		if prev != nil {
			return &cache.Pair[*domain.StyleRecord]{Count: prev.Count + 1, Value: prev.Value}
		}
		return &cache.Pair[*domain.StyleRecord]{Count: 1, Value: rec}
	}
}

func releaseStyle(prev *cache.Pair[*domain.StyleRecord]) *cache.Pair[*domain.StyleRecord] {
	if prev == nil || prev.Count <= 1 {
		return nil
	}
	return &cache.Pair[*domain.StyleRecord]{Count: prev.Count - 1, Value: prev.Value}
}

func TestFlush_AutoClear(t *testing.T) {
	tests := []struct {
		name      string
		autoClear bool
		want      []domain.StyleElement
	}{
		{name: "removes the element", autoClear: true},
		{name: "keeps the element", autoClear: false, want: []domain.StyleElement{{ID: "s1", CSS: ".a{}"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := dom.NewDocument()
			rt := runtime.New(runtime.WithContainer(doc), runtime.WithAutoClear(tt.autoClear))
			p := domain.NewCachePath("style", "a")

			doc.Insert(domain.StyleElement{ID: "s1", CSS: ".a{}"})
			rt.Styles().Update(p, stylePair(&domain.StyleRecord{StyleID: "s1", Path: p}))
			rt.Styles().Update(p, releaseStyle)

			assert.Equal(t, 1, rt.Flush())
			assert.Equal(t, tt.want, doc.Styles())
		})
	}
}

func TestFlush_HMRClearsWithoutAutoClear(t *testing.T) {
	doc := dom.NewDocument()
	rt := runtime.New(runtime.WithContainer(doc), runtime.WithAutoClear(false))
	p := domain.NewCachePath("style", "a")

	doc.Insert(domain.StyleElement{ID: "s1"})
	rt.Styles().Update(p, stylePair(&domain.StyleRecord{StyleID: "s1", Path: p}))
	rt.Styles().Update(p, releaseStyle)

	rt.MarkHMR()
	rt.Flush()
	assert.Empty(t, doc.Styles())
}

func TestUntrackToken_RemovesOwnedStyles(t *testing.T) {
	doc := dom.NewDocument()
	rt := runtime.New(runtime.WithContainer(doc))

	rt.TrackToken("k1")
	rt.TrackToken("k2")
	doc.Insert(domain.StyleElement{ID: "mine", TokenKey: "k1", Owner: rt.ID()})
	doc.Insert(domain.StyleElement{ID: "foreign", TokenKey: "k1", Owner: "other"})
	doc.Insert(domain.StyleElement{ID: "live", TokenKey: "k2", Owner: rt.ID()})

	rt.UntrackToken("k1")

	var got []string
	for _, el := range doc.Styles() {
		got = append(got, el.ID)
	}
	assert.Equal(t, []string{"foreign", "live"}, got)
}

func TestUntrackToken_KeepsLastScope(t *testing.T) {
	doc := dom.NewDocument()
	rt := runtime.New(runtime.WithContainer(doc))

	rt.TrackToken("k1")
	doc.Insert(domain.StyleElement{ID: "mine", TokenKey: "k1", Owner: rt.ID()})

	rt.UntrackToken("k1")
	assert.Len(t, doc.Styles(), 1, "the last token scope is never swept")
}

func TestDispose(t *testing.T) {
	doc := dom.NewDocument()
	rt := runtime.New(runtime.WithContainer(doc))

	doc.Insert(domain.StyleElement{ID: "mine", Owner: rt.ID()})
	doc.Insert(domain.StyleElement{ID: "foreign", Owner: "other"})
	rt.Styles().Update(domain.NewCachePath("style", "a"), stylePair(&domain.StyleRecord{StyleID: "mine"}))

	rt.Dispose()

	assert.Equal(t, 0, rt.Styles().Len())
	require.Len(t, doc.Styles(), 1)
	assert.Equal(t, "foreign", doc.Styles()[0].ID)
}

func TestDefault(t *testing.T) {
	t.Cleanup(runtime.ResetDefault)

	a := runtime.Default()
	assert.Same(t, a, runtime.Default())

	runtime.ResetDefault()
	assert.NotSame(t, a, runtime.Default())
}
