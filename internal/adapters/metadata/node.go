package metadata

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refset/internal/core/ports"
)

// NodeID is the unique identifier for the reference factory Graft node.
const NodeID graft.ID = "adapter.reference_factory"

func init() {
	graft.Register(graft.Node[ports.ReferenceFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReferenceFactory, error) {
			return NewFactory(), nil
		},
	})
}
