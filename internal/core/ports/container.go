package ports

import (
	"io"

	"go.trai.ch/cssinjs/internal/core/domain"
)

//go:generate mockgen -source=container.go -destination=mocks/mock_container.go -package=mocks

// StyleContainer is the shared place style sheets are inserted into, such as a document head.
// It is mutated only by style registration and never reorders elements once inserted.
type StyleContainer interface {
	// Insert adds el after the managed elements of equal or lower priority and before any
	// unmanaged ones. When an element with el.ID already exists it is updated in place and
	// Insert returns false.
	Insert(el domain.StyleElement) bool
	// Remove deletes the element with the given id and reports whether it existed.
	Remove(id string) bool
	// Styles returns the managed elements in document order.
	Styles() []domain.StyleElement
}

// Rehydrator is implemented by containers that can adopt server-rendered styles.
type Rehydrator interface {
	// Rehydrate moves server-rendered styles to the front of the container, marks them with
	// instanceID and removes elements whose content hash was already seen. It returns the
	// number of removed duplicates.
	Rehydrate(instanceID string) int
}

// Document is an HTML document used as a style container.
type Document interface {
	StyleContainer
	Rehydrator
	// Render writes the document as HTML.
	Render(w io.Writer) error
}

// DocumentFactory creates and parses documents.
type DocumentFactory interface {
	// New returns an empty document.
	New() Document
	// Parse reads a document.
	Parse(r io.Reader) (Document, error)
}
