// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/molt/internal/adapters/config"
	_ "go.trai.ch/molt/internal/adapters/fs"
	_ "go.trai.ch/molt/internal/adapters/jsr"
	_ "go.trai.ch/molt/internal/adapters/logger"
	_ "go.trai.ch/molt/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/molt/internal/app"
	_ "go.trai.ch/molt/internal/engine/resolver"
)
