// Package resolver implements the reference set resolution engine: dependency
// graph construction across package registries, version conflict resolution,
// cache-or-download package acquisition, nearest-framework asset selection,
// and a two-level cache (per-descriptor memoization in process, an advisory
// file lock across processes).
package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/refset/internal/core/frameworks"
	"go.trai.ch/refset/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Engine resolves descriptors to reference sets.
type Engine struct {
	registries []ports.PackageRegistry
	store      ports.PackageStore
	locker     ports.CacheLocker
	factory    ports.ReferenceFactory
	logger     ports.Logger
	tracer     ports.Tracer

	mu   sync.RWMutex
	memo map[memoKey][]domain.Reference
	sf   singleflight.Group
}

// memoKey scopes memoization to a single descriptor instance and language.
type memoKey struct {
	desc     *domain.Descriptor
	language string
}

// New creates an Engine. Registries are queried in the order given.
func New(
	registries []ports.PackageRegistry,
	store ports.PackageStore,
	locker ports.CacheLocker,
	factory ports.ReferenceFactory,
	logger ports.Logger,
	tracer ports.Tracer,
) *Engine {
	return &Engine{
		registries: registries,
		store:      store,
		locker:     locker,
		factory:    factory,
		logger:     logger,
		tracer:     tracer,
		memo:       make(map[memoKey][]domain.Reference),
	}
}

// Resolve returns the reference set for the descriptor and language. The
// empty language resolves the language-agnostic default; a language the
// descriptor has no specific assemblies for falls back to the default and
// shares its memo entry. Results are memoized per (descriptor, language):
// repeated calls return the identical slice, and concurrent calls trigger at
// most one computation.
//
// The returned slice must not be mutated by callers.
func (e *Engine) Resolve(ctx context.Context, desc *domain.Descriptor, language string) ([]domain.Reference, error) {
	if desc == nil {
		return nil, domain.ErrMissingRootPackage
	}
	lang := normalizeLanguage(desc, language)
	key := memoKey{desc: desc, language: lang}

	e.mu.RLock()
	refs, ok := e.memo[key]
	e.mu.RUnlock()
	if ok {
		return refs, nil
	}

	// singleflight collapses concurrent resolutions of the same pair; the
	// key embeds the descriptor's address because memoization is
	// per-instance, not per-value.
	v, err, _ := e.sf.Do(fmt.Sprintf("%p|%s", desc, lang), func() (any, error) {
		return e.resolveSlow(ctx, desc, lang, key)
	})
	if err != nil {
		return nil, err
	}
	refs, _ = v.([]domain.Reference)
	return refs, nil
}

// resolveSlow is the slow path: it takes the cross-process cache lock,
// re-checks the memo, and computes the set. The lock is released on every
// exit path.
func (e *Engine) resolveSlow(ctx context.Context, desc *domain.Descriptor, lang string, key memoKey) ([]domain.Reference, error) {
	ctx, span := e.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("framework", desc.TargetFramework)
	span.SetAttribute("language", lang)

	unlock, err := e.locker.Lock(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		err = zerr.Wrap(err, domain.ErrLockFailed.Error())
		span.RecordError(err)
		return nil, err
	}
	defer unlock()

	// Another goroutine may have finished while we waited for the file lock.
	e.mu.RLock()
	refs, ok := e.memo[key]
	e.mu.RUnlock()
	if ok {
		return refs, nil
	}

	paths, err := e.compute(ctx, desc, lang)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	refs = make([]domain.Reference, 0, len(paths))
	for _, p := range paths {
		refs = append(refs, e.factory.FromFile(p))
	}
	span.SetAttribute("references", len(refs))

	e.mu.Lock()
	e.memo[key] = refs
	e.mu.Unlock()
	return refs, nil
}

// compute runs one full resolution: graph, install list, acquisition, asset
// selection. It is always called under the cache lock.
func (e *Engine) compute(ctx context.Context, desc *domain.Descriptor, lang string) ([]string, error) {
	target, err := frameworks.Parse(desc.TargetFramework)
	if err != nil {
		return nil, err
	}

	var roots []domain.PackageIdentity
	if desc.RootPackage != nil {
		roots = append(roots, *desc.RootPackage)
	}
	roots = append(roots, desc.Packages...)
	if len(roots) == 0 {
		return nil, nil
	}

	graph, err := e.buildGraph(ctx, roots, desc.TargetFramework)
	if err != nil {
		return nil, err
	}

	var install domain.InstallSet
	if len(desc.Packages) == 0 {
		// No extra packages: the conflict resolver is skipped entirely and
		// the install list is just the root.
		install = domain.InstallSet{*desc.RootPackage}
	} else {
		install, err = resolveVersions(graph, desc.RootPackage, desc.Packages)
		if err != nil {
			return nil, err
		}
	}

	installed, err := e.acquire(ctx, graph, install, desc.RootPackage)
	if err != nil {
		return nil, err
	}

	return e.collect(desc, lang, target, install, installed)
}

// normalizeLanguage maps a language with no descriptor-specific assemblies
// (including unknown languages) to the language-agnostic default.
func normalizeLanguage(desc *domain.Descriptor, language string) string {
	if _, ok := desc.AssembliesForLanguage(language); !ok {
		return ""
	}
	return language
}
