package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/cssinjs/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/adapters/dom"       //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/adapters/hash"      //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			hash.NodeID,
			dom.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			detector.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	documents, err := graft.Dep[ports.DocumentFactory](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, store, tracer, hasher, documents).WithWatcher(w), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	det, err := graft.Dep[ports.OutputDetector](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: a, Logger: log, Detector: det}, nil
}
