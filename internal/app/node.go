package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gantt/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gantt/internal/adapters/debounce"  //nolint:depguard // Wired in app layer
	"go.trai.ch/gantt/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gantt/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/gantt/internal/adapters/tickcache" //nolint:depguard // Wired in app layer
	"go.trai.ch/gantt/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/gantt/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			tickcache.NodeID,
			debounce.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*tickcache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[ports.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, cache, sched, tracer, w, log), nil
}
