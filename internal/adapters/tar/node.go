package tar

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wdabuild/internal/adapters/shell"
	"go.trai.ch/wdabuild/internal/core/ports"
)

// NodeID is the unique identifier for the archiver Graft node.
const NodeID graft.ID = "adapter.tar"

func init() {
	graft.Register(graft.Node[ports.Archiver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Archiver, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewArchiver(executor), nil
		},
	})
}
