// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/refset/internal/core/domain"
)

// PackageRegistry is a source of package metadata and content. Registries are
// queried in priority order; the first one that returns non-nil dependency
// info for an identity becomes authoritative for it.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type PackageRegistry interface {
	// ID names the registry for logging and for recording graph authority.
	ID() string

	// DependencyInfo returns the dependency record for the identity as seen
	// for the given target framework. It returns (nil, nil) when the registry
	// does not know the package.
	DependencyInfo(ctx context.Context, identity domain.PackageIdentity, targetFramework string) (*domain.DependencyInfo, error)

	// Download streams the package archive. The caller closes the reader.
	Download(ctx context.Context, identity domain.PackageIdentity) (io.ReadCloser, error)
}
