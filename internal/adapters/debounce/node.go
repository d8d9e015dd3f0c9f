package debounce

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gantt/internal/core/ports"
)

// NodeID is the unique identifier for the debounce scheduler Graft node.
const NodeID graft.ID = "adapter.debounce"

func init() {
	graft.Register(graft.Node[ports.Scheduler]{
		ID: NodeID,
		Run: func(_ context.Context) (ports.Scheduler, error) {
			return NewScheduler(), nil
		},
	})
}
