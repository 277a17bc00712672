package dom

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/cssinjs/internal/core/ports"
)

// NodeID is the unique identifier for the document factory Graft node.
const NodeID graft.ID = "adapter.dom"

func init() {
	graft.Register(graft.Node[ports.DocumentFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentFactory, error) {
			return Factory{}, nil
		},
	})
}
