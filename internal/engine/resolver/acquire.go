package resolver

import (
	"context"
	"errors"
	"io"
	"sync"

	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/refset/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// downloadConcurrency bounds parallel package downloads within one resolution.
const downloadConcurrency = 4

// acquire makes every install-set package available on disk and returns a map
// of identity key to installed path. Packages that turn out to carry no
// compile assets (and are not the root) are left out of the map. The whole
// step runs under the cache lock held by the caller, so concurrent extraction
// within the process targets distinct directories and other processes are
// excluded entirely.
func (e *Engine) acquire(
	ctx context.Context,
	graph domain.DependencyGraph,
	install domain.InstallSet,
	root *domain.PackageIdentity,
) (map[string]string, error) {
	installed := make(map[string]string, len(install))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(downloadConcurrency)

	for _, identity := range install {
		isRoot := root != nil && root.Equals(identity)
		g.Go(func() error {
			path, err := e.acquireOne(ctx, graph, identity, isRoot)
			if err != nil {
				return err
			}
			if path != "" {
				mu.Lock()
				installed[identity.Key()] = path
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return installed, nil
}

// acquireOne returns the installed path for one package, probing the cache
// tiers first and downloading only on a miss. It returns "" for packages that
// were skipped because they contribute no compile assets.
func (e *Engine) acquireOne(
	ctx context.Context,
	graph domain.DependencyGraph,
	identity domain.PackageIdentity,
	isRoot bool,
) (string, error) {
	path, err := e.store.InstalledPath(identity)
	switch {
	case err == nil:
		return path, nil
	case !errors.Is(err, domain.ErrNotInstalled):
		return "", err
	}

	archive, err := e.download(ctx, graph, identity)
	if err != nil {
		return "", err
	}
	defer func() { _ = archive.Close() }()

	path, extracted, err := e.store.Extract(ctx, identity, archive, !isRoot)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	if !extracted {
		// Graph-only package: needed for traversal, nothing to compile against.
		e.logger.Debug("package has no compile assets, skipping extraction", "package", identity.String())
		return "", nil
	}
	e.logger.Info("installed package", "package", identity.String())
	return path, nil
}

// download streams the package from the registry recorded as authoritative
// for it during graph construction, falling back to priority order when the
// graph carries no record for the identity.
func (e *Engine) download(ctx context.Context, graph domain.DependencyGraph, identity domain.PackageIdentity) (io.ReadCloser, error) {
	if info, ok := graph[identity.Key()]; ok {
		if registry := e.registryByID(info.Source); registry != nil {
			rc, err := registry.Download(ctx, identity)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "package", identity.String())
			}
			return rc, nil
		}
	}

	var lastErr error
	for _, registry := range e.registries {
		rc, err := registry.Download(ctx, identity)
		if err == nil {
			return rc, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = domain.ErrDownloadFailed
	}
	return nil, zerr.With(zerr.Wrap(lastErr, domain.ErrDownloadFailed.Error()), "package", identity.String())
}

func (e *Engine) registryByID(id string) ports.PackageRegistry {
	for _, registry := range e.registries {
		if registry.ID() == id {
			return registry
		}
	}
	return nil
}
