package style

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/engine/runtime"
)

// Extract returns the live styles of rt as style tags, sorted by order and then by first
// registration. Each effect follows the first style that declared it and is emitted once.
func Extract(rt *runtime.Runtime) []domain.Extracted {
	recs := rt.Styles().Values()
	slices.SortStableFunc(recs, func(a, b *domain.StyleRecord) int {
		return cmp.Compare(a.Order, b.Order)
	})

	seen := make(map[string]struct{})
	var out []domain.Extracted
	for _, rec := range recs {
		out = append(out, extractRecord(rec, seen)...)
	}
	return out
}

func extractRecord(rec *domain.StyleRecord, seen map[string]struct{}) []domain.Extracted {
	out := make([]domain.Extracted, 0, 1+len(rec.Effects))
	if rec.CSS != "" {
		out = append(out, domain.Extracted{
			Attrs: tagAttrs(rec.TokenKey, rec.StyleID),
			CSS:   rec.CSS,
		})
	}
	for _, eff := range rec.Effects {
		if seen != nil {
			if _, ok := seen[eff.Name]; ok {
				continue
			}
			seen[eff.Name] = struct{}{}
		}
		out = append(out, domain.Extracted{
			Attrs: tagAttrs(rec.TokenKey, domain.EffectID(eff.Name)),
			CSS:   eff.CSS,
		})
	}
	return out
}

func tagAttrs(tokenKey, id string) []domain.Attr {
	attrs := make([]domain.Attr, 0, 2)
	if tokenKey != "" {
		attrs = append(attrs, domain.Attr{Key: domain.AttrToken, Val: tokenKey})
	}
	return append(attrs, domain.Attr{Key: domain.AttrMark, Val: id})
}

// Node returns the <style> element of an extracted style.
func Node(e domain.Extracted) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "style", DataAtom: atom.Style}
	for _, a := range e.Attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: e.CSS})
	return n
}

// RenderHTML renders extracted styles as consecutive <style> tags.
func RenderHTML(styles []domain.Extracted) string {
	var sb strings.Builder
	for _, e := range styles {
		// Writes to a strings.Builder do not fail.
		_ = html.Render(&sb, Node(e))
	}
	return sb.String()
}

// RenderCSS concatenates the text of extracted styles.
func RenderCSS(styles []domain.Extracted) string {
	var sb strings.Builder
	for _, e := range styles {
		sb.WriteString(e.CSS)
	}
	return sb.String()
}
