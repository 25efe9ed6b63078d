// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wdabuild/internal/adapters/config"
	_ "go.trai.ch/wdabuild/internal/adapters/fs"
	_ "go.trai.ch/wdabuild/internal/adapters/host"
	_ "go.trai.ch/wdabuild/internal/adapters/linear"
	_ "go.trai.ch/wdabuild/internal/adapters/logger"
	_ "go.trai.ch/wdabuild/internal/adapters/npm"
	_ "go.trai.ch/wdabuild/internal/adapters/record"
	_ "go.trai.ch/wdabuild/internal/adapters/shell"
	_ "go.trai.ch/wdabuild/internal/adapters/tar"
	_ "go.trai.ch/wdabuild/internal/adapters/telemetry"
	_ "go.trai.ch/wdabuild/internal/adapters/xcode"
	// Register app and engine nodes.
	_ "go.trai.ch/wdabuild/internal/app"
	_ "go.trai.ch/wdabuild/internal/engine/orchestrator"
)
