package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refset/internal/adapters/lockfile"
	"go.trai.ch/refset/internal/adapters/logger"
	"go.trai.ch/refset/internal/adapters/metadata"
	"go.trai.ch/refset/internal/adapters/pkgcache"
	"go.trai.ch/refset/internal/adapters/registry"
	"go.trai.ch/refset/internal/adapters/telemetry"
	"go.trai.ch/refset/internal/core/ports"
)

// NodeID is the unique identifier for the resolution engine Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			pkgcache.NodeID,
			lockfile.NodeID,
			metadata.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			registries, err := graft.Dep[[]ports.PackageRegistry](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.PackageStore](ctx)
			if err != nil {
				return nil, err
			}
			locker, err := graft.Dep[ports.CacheLocker](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[ports.ReferenceFactory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(registries, store, locker, factory, log, tracer), nil
		},
	})
}
