package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refset/internal/adapters/config"
	"go.trai.ch/refset/internal/adapters/lockfile"
	"go.trai.ch/refset/internal/adapters/logger"
	"go.trai.ch/refset/internal/core/ports"
	"go.trai.ch/refset/internal/engine/resolver"
)

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			logger.NodeID,
			lockfile.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			engine, err := graft.Dep[*resolver.Engine](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			locker, err := graft.Dep[ports.CacheLocker](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(engine, log, locker, cfg.CacheRoot),
				Logger: log,
			}, nil
		},
	})
}
