package detector

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/cssinjs/internal/core/ports"
)

// NodeID is the unique identifier for the output detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.OutputDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputDetector, error) {
			return Detector{}, nil
		},
	})
}
