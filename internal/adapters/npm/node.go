package npm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wdabuild/internal/adapters/shell"
	"go.trai.ch/wdabuild/internal/core/ports"
)

// NodeID is the unique identifier for the npm fetcher Graft node.
const NodeID graft.ID = "adapter.npm"

func init() {
	graft.Register(graft.Node[ports.PackageFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageFetcher, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(executor), nil
		},
	})
}
