// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cssinjs/internal/adapters/cas"
	_ "go.trai.ch/cssinjs/internal/adapters/config"
	_ "go.trai.ch/cssinjs/internal/adapters/detector"
	_ "go.trai.ch/cssinjs/internal/adapters/dom"
	_ "go.trai.ch/cssinjs/internal/adapters/hash"
	_ "go.trai.ch/cssinjs/internal/adapters/logger"
	_ "go.trai.ch/cssinjs/internal/adapters/telemetry"
	_ "go.trai.ch/cssinjs/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/cssinjs/internal/app"
)
