package hash

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/cssinjs/internal/core/ports"
)

// NodeID is the unique identifier for the style hasher Graft node.
const NodeID graft.ID = "adapter.hash"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return Murmur{}, nil
		},
	})
}
