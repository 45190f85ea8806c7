package linear

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the linear reporter node.
const NodeID graft.ID = "adapter.linear"

func init() {
	graft.Register(graft.Node[*Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Reporter, error) {
			return NewReporter(nil), nil
		},
	})
}
