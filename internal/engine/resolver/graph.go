package resolver

import (
	"context"
	"errors"

	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/zerr"
)

// buildGraph expands the dependency graph from the root identities by
// depth-first traversal. Each identity is expanded at most once, which bounds
// the walk on diamond and cyclic graphs. Registries are queried in priority
// order per identity; the first responder is authoritative and later
// registries are never asked about that identity again. Identities no
// registry knows are dropped from the graph and resolution continues without
// them.
func (e *Engine) buildGraph(ctx context.Context, roots []domain.PackageIdentity, targetFramework string) (domain.DependencyGraph, error) {
	graph := make(domain.DependencyGraph)
	visited := make(map[string]struct{})

	stack := make([]domain.PackageIdentity, len(roots))
	copy(stack, roots)

	for len(stack) > 0 {
		identity := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[identity.Key()]; ok {
			continue
		}
		visited[identity.Key()] = struct{}{}

		info, err := e.queryRegistries(ctx, identity, targetFramework)
		switch {
		case errors.Is(err, domain.ErrRegistryMiss):
			e.logger.Debug("no registry responded, dropping package", "package", identity.String())
			continue
		case err != nil:
			return nil, err
		}
		graph.Add(*info)

		for _, dep := range info.Dependencies {
			minimum := dep.Range.MinVersion()
			if minimum == nil {
				// A range unbounded below names no concrete candidate.
				continue
			}
			candidate := domain.PackageIdentity{ID: dep.ID, Version: minimum}
			if _, ok := visited[candidate.Key()]; !ok {
				stack = append(stack, candidate)
			}
		}
	}

	return graph, nil
}

// queryRegistries asks each registry in priority order for dependency info.
// It returns ErrRegistryMiss when every registry misses; transport failures
// propagate.
func (e *Engine) queryRegistries(ctx context.Context, identity domain.PackageIdentity, targetFramework string) (*domain.DependencyInfo, error) {
	for _, registry := range e.registries {
		info, err := registry.DependencyInfo(ctx, identity, targetFramework)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error()), "registry", registry.ID())
		}
		if info != nil {
			info.Source = registry.ID()
			return info, nil
		}
	}
	return nil, zerr.With(domain.ErrRegistryMiss, "package", identity.String())
}
