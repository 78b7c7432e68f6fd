// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/refset/internal/adapters/config"
	_ "go.trai.ch/refset/internal/adapters/lockfile"
	_ "go.trai.ch/refset/internal/adapters/logger"
	_ "go.trai.ch/refset/internal/adapters/metadata"
	_ "go.trai.ch/refset/internal/adapters/pkgcache"
	_ "go.trai.ch/refset/internal/adapters/registry"
	_ "go.trai.ch/refset/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/refset/internal/app"
	_ "go.trai.ch/refset/internal/engine/resolver"
)
