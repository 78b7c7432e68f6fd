package registry

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/refset/internal/adapters/config"
	"go.trai.ch/refset/internal/core/ports"
)

// NodeID is the unique identifier for the package registries Graft node.
const NodeID graft.ID = "adapter.registries"

func init() {
	graft.Register(graft.Node[[]ports.PackageRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) ([]ports.PackageRegistry, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			// One shared client so every registry reuses connections.
			httpClient := &http.Client{Timeout: httpClientTimeout}
			registries := make([]ports.PackageRegistry, 0, len(cfg.Registries))
			for _, spec := range cfg.Registries {
				registries = append(registries, New(spec.Name, spec.URL, httpClient))
			}
			return registries, nil
		},
	})
}
