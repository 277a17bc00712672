// Package dom implements the style container on an in-memory HTML document.
package dom

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"

	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
)

const (
	// AttrOrder marks style elements inserted by a runtime.
	AttrOrder = "data-rc-order"
	// OrderQueue is the AttrOrder value of queued managed styles.
	OrderQueue = "prependQueue"
)

// Document is an HTML document whose head receives style elements.
// It is safe for concurrent use.
type Document struct {
	mu   sync.Mutex
	root *html.Node
	head *html.Node
	body *html.Node
}

var _ ports.Document = (*Document)(nil)

// NewDocument returns an empty document.
func NewDocument() *Document {
	// Parsing a constant never fails.
	d, _ := ParseDocument(strings.NewReader("<!DOCTYPE html><html><head></head><body></body></html>"))
	return d
}

// ParseDocument parses an HTML document, decoding it according to its declared charset.
func ParseDocument(r io.Reader) (*Document, error) {
	cr, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDocumentParseFailed.Error())
	}
	root, err := html.Parse(cr)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDocumentParseFailed.Error())
	}

	d := &Document{root: root}
	for n := range root.Descendants() {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.DataAtom {
		case atom.Head:
			if d.head == nil {
				d.head = n
			}
		case atom.Body:
			if d.body == nil {
				d.body = n
			}
		}
	}
	if d.head == nil || d.body == nil {
		return nil, zerr.Wrap(zerr.New("document has no head or body"), domain.ErrDocumentParseFailed.Error())
	}
	return d, nil
}

// Insert adds el to the head after the queued styles of equal or lower priority. An element
// that already carries el.ID has its text replaced instead.
func (d *Document) Insert(el domain.StyleElement) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if existing := d.find(el.ID); existing != nil {
		if text(existing) != el.CSS {
			setText(existing, el.CSS)
		}
		return false
	}

	n := newStyle(el)
	if after := d.lastQueued(el.Priority); after != nil {
		d.head.InsertBefore(n, after.NextSibling)
	} else {
		d.head.InsertBefore(n, d.head.FirstChild)
	}
	return true
}

// Remove deletes the style element carrying id.
func (d *Document) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := d.find(id)
	if n == nil {
		return false
	}
	n.Parent.RemoveChild(n)
	return true
}

// Styles returns every style element carrying a content hash, in document order.
func (d *Document) Styles() []domain.StyleElement {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []domain.StyleElement
	for _, n := range d.marked(d.root) {
		out = append(out, toElement(n))
	}
	return out
}

// Rehydrate moves the server-rendered styles of the body to the front of the head, keeping
// their order, and claims them for instanceID unless another instance already did. It then
// removes every style whose content hash appeared earlier in the document.
func (d *Document) Rehydrate(instanceID string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	anchor := d.head.FirstChild
	for _, n := range d.marked(d.body) {
		owner := attr(n, domain.AttrInstance)
		if owner == "" {
			setAttr(n, domain.AttrInstance, instanceID)
			owner = instanceID
		}
		if owner != instanceID {
			continue
		}
		n.Parent.RemoveChild(n)
		d.head.InsertBefore(n, anchor)
	}

	seen := make(map[string]struct{})
	removed := 0
	for _, n := range d.marked(d.root) {
		id := attr(n, domain.AttrMark)
		if _, ok := seen[id]; ok {
			n.Parent.RemoveChild(n)
			removed++
			continue
		}
		seen[id] = struct{}{}
	}
	return removed
}

// AppendBody appends nodes to the end of the body.
func (d *Document) AppendBody(nodes ...*html.Node) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, n := range nodes {
		d.body.AppendChild(n)
	}
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := html.Render(w, d.root); err != nil {
		return zerr.Wrap(err, domain.ErrDocumentRenderFailed.Error())
	}
	return nil
}

// String renders the document, returning an empty string if rendering fails.
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}

func (d *Document) find(id string) *html.Node {
	for _, n := range d.marked(d.root) {
		if attr(n, domain.AttrMark) == id {
			return n
		}
	}
	return nil
}

func (d *Document) lastQueued(priority int) *html.Node {
	var last *html.Node
	for n := d.head.FirstChild; n != nil; n = n.NextSibling {
		if !isStyle(n) || attr(n, AttrOrder) != OrderQueue {
			continue
		}
		p, _ := strconv.Atoi(attr(n, domain.AttrPriority))
		if priority >= p {
			last = n
		}
	}
	return last
}

func (d *Document) marked(root *html.Node) []*html.Node {
	var out []*html.Node
	for n := range root.Descendants() {
		if isStyle(n) && hasAttr(n, domain.AttrMark) {
			out = append(out, n)
		}
	}
	return out
}

func newStyle(el domain.StyleElement) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "style", DataAtom: atom.Style}
	n.Attr = append(n.Attr, html.Attribute{Key: AttrOrder, Val: OrderQueue})
	for _, a := range el.Attrs() {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	setText(n, el.CSS)
	return n
}

func toElement(n *html.Node) domain.StyleElement {
	p, _ := strconv.Atoi(attr(n, domain.AttrPriority))
	return domain.StyleElement{
		ID:        attr(n, domain.AttrMark),
		TokenKey:  attr(n, domain.AttrToken),
		CachePath: attr(n, domain.AttrDevCachePath),
		Priority:  p,
		Owner:     attr(n, domain.AttrInstance),
		CSS:       text(n),
	}
}

func isStyle(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Style
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func text(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func setText(n *html.Node, s string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}
