// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pbxpatch/internal/adapters/config"
	_ "go.trai.ch/pbxpatch/internal/adapters/diff"
	_ "go.trai.ch/pbxpatch/internal/adapters/fs"
	_ "go.trai.ch/pbxpatch/internal/adapters/logger"
	_ "go.trai.ch/pbxpatch/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/pbxpatch/internal/app"
)
