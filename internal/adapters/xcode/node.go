package xcode

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wdabuild/internal/adapters/shell"
	"go.trai.ch/wdabuild/internal/core/ports"
)

const (
	// BuilderNodeID is the unique identifier for the xcodebuild builder Graft node.
	BuilderNodeID graft.ID = "adapter.xcode.builder"
	// DetectorNodeID is the unique identifier for the Xcode version detector Graft node.
	DetectorNodeID graft.ID = "adapter.xcode.detector"
)

func init() {
	graft.Register(graft.Node[ports.NativeBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.NativeBuilder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(executor), nil
		},
	})

	graft.Register(graft.Node[ports.ToolchainDetector]{
		ID:        DetectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ToolchainDetector, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(executor), nil
		},
	})
}
