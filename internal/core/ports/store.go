package ports

import (
	"context"
	"io"

	"go.trai.ch/refset/internal/core/domain"
)

// PackageStore manages extracted package copies on disk.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PackageStore interface {
	// InstalledPath probes the local tier and then the global tier for an
	// extracted copy of the package. It returns domain.ErrNotInstalled when
	// no tier has one; probe failures caused by overlong paths are reported
	// the same way.
	InstalledPath(identity domain.PackageIdentity) (string, error)

	// Extract unpacks the archive into the local tier and returns the
	// installed path. When requireAssets is set and the archive carries no
	// lib or ref entries, nothing is extracted and extracted is false.
	// Extraction is idempotent: an already-installed package is reused.
	Extract(ctx context.Context, identity domain.PackageIdentity, archive io.Reader, requireAssets bool) (path string, extracted bool, err error)

	// Contents enumerates the ref/lib asset groups and declared framework
	// references of an installed package.
	Contents(installedPath string) (*domain.PackageContents, error)
}
