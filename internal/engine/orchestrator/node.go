package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wdabuild/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wdabuild/internal/adapters/host"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wdabuild/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wdabuild/internal/adapters/npm"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wdabuild/internal/adapters/record"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wdabuild/internal/adapters/tar"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wdabuild/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wdabuild/internal/adapters/xcode"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wdabuild/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			host.NodeID,
			xcode.DetectorNodeID,
			fs.HasherNodeID,
			fs.WorkspaceNodeID,
			npm.NodeID,
			xcode.BuilderNodeID,
			tar.NodeID,
			record.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Orchestrator, error) {
	h, err := graft.Dep[ports.Host](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[ports.ToolchainDetector](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.PackageFetcher](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.NativeBuilder](ctx)
	if err != nil {
		return nil, err
	}

	archiver, err := graft.Dep[ports.Archiver](ctx)
	if err != nil {
		return nil, err
	}

	records, err := graft.Dep[ports.BuildRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(h, detector, hasher, workspace, fetcher, builder, archiver, records, tracer, log), nil
}
