package dom

import (
	"io"

	"go.trai.ch/cssinjs/internal/core/ports"
)

// Factory creates in-memory documents.
type Factory struct{}

var _ ports.DocumentFactory = Factory{}

// New returns an empty document.
func (Factory) New() ports.Document {
	return NewDocument()
}

// Parse reads a document.
func (Factory) Parse(r io.Reader) (ports.Document, error) {
	d, err := ParseDocument(r)
	if err != nil {
		return nil, err
	}
	return d, nil
}
