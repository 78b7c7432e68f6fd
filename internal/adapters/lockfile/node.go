package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refset/internal/adapters/config"
	"go.trai.ch/refset/internal/core/ports"
)

// NodeID is the unique identifier for the cache locker Graft node.
const NodeID graft.ID = "adapter.cache_locker"

func init() {
	graft.Register(graft.Node[ports.CacheLocker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CacheLocker, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocker(cfg.CacheRoot)
		},
	})
}
