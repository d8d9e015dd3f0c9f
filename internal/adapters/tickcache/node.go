package tickcache

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the tick cache Graft node.
const NodeID graft.ID = "adapter.tickcache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Cache, error) {
			return New(), nil
		},
	})
}
