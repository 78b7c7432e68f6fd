package resolver_test

import (
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refset/internal/core/domain"
)

func dep(id, rangeStr string) domain.Dependency {
	return domain.Dependency{ID: id, Range: domain.MustParseVersionRange(rangeStr)}
}

func libArchive(t *testing.T, assembly string) []byte {
	t.Helper()
	return makeArchive(t, map[string]string{
		"lib/net462/" + assembly + ".dll": assembly,
	})
}

func TestResolve_CyclicDependenciesTerminate(t *testing.T) {
	desc, root := rootedDescriptor()
	base := domain.MustNewPackageIdentity("Base", "1.0.0")
	ext := domain.MustNewPackageIdentity("Ext", "1.0.0")
	desc = desc.WithPackages(base)

	registry := newStubRegistry("main")
	registry.addPackage(root, rootArchive(t))
	registry.addPackage(base, libArchive(t, "Base"), dep("Ext", "[1.0.0,)"))
	registry.addPackage(ext, libArchive(t, "Ext"), dep("Base", "[1.0.0,)"))

	var locks atomic.Int32
	engine := newEngine(t, &locks, registry)

	refs, err := engine.Resolve(t.Context(), desc, "")
	require.NoError(t, err)

	names := baseNames(refs)
	assert.Contains(t, names, "Base.dll")
	assert.Contains(t, names, "Ext.dll")

	// Each graph node is expanded exactly once.
	assert.Equal(t, 1, registry.infoCalls[base.Key()])
	assert.Equal(t, 1, registry.infoCalls[ext.Key()])
}

func TestResolve_FirstRespondingRegistryIsAuthoritative(t *testing.T) {
	desc, root := rootedDescriptor()
	base := domain.MustNewPackageIdentity("Base", "1.0.0")
	desc = desc.WithPackages(base)

	primary := newStubRegistry("primary")
	primary.addPackage(root, rootArchive(t))
	primary.addPackage(base, libArchive(t, "Base"))

	secondary := newStubRegistry("secondary")
	secondary.addPackage(base, libArchive(t, "Base"))

	var locks atomic.Int32
	engine := newEngine(t, &locks, primary, secondary)

	_, err := engine.Resolve(t.Context(), desc, "")
	require.NoError(t, err)

	// The first responder owns the identity: the secondary registry is
	// neither queried for it again nor asked for its content.
	assert.Zero(t, secondary.infoCalls[base.Key()])
	assert.Zero(t, secondary.totalDownloads())
	assert.Equal(t, 1, primary.downloads[base.Key()])
}

func TestResolve_SecondRegistryServesPrimaryMiss(t *testing.T) {
	desc, root := rootedDescriptor()
	ext := domain.MustNewPackageIdentity("Ext", "1.0.0")
	desc = desc.WithPackages(ext)

	primary := newStubRegistry("primary")
	primary.addPackage(root, rootArchive(t))

	secondary := newStubRegistry("secondary")
	secondary.addPackage(ext, libArchive(t, "Ext"))

	var locks atomic.Int32
	engine := newEngine(t, &locks, primary, secondary)

	refs, err := engine.Resolve(t.Context(), desc, "")
	require.NoError(t, err)

	assert.Contains(t, baseNames(refs), "Ext.dll")
	assert.Equal(t, 1, primary.infoCalls[ext.Key()], "the primary registry is always asked first")
	assert.Equal(t, 1, secondary.downloads[ext.Key()])
}

func TestResolve_UnknownPackagesAreDropped(t *testing.T) {
	desc, root := rootedDescriptor()
	base := domain.MustNewPackageIdentity("Base", "1.0.0")
	ghost := domain.MustNewPackageIdentity("Ghost", "1.0.0")
	desc = desc.WithPackages(base)

	registry := newStubRegistry("main")
	registry.addPackage(root, rootArchive(t))
	registry.addPackage(base, libArchive(t, "Base"), dep("Ghost", "[1.0.0,)"))

	var locks atomic.Int32
	engine := newEngine(t, &locks, registry)

	refs, err := engine.Resolve(t.Context(), desc, "")
	require.NoError(t, err, "a package no registry knows must not fail the resolution")

	assert.Contains(t, baseNames(refs), "Base.dll")
	assert.Equal(t, 1, registry.infoCalls[ghost.Key()])
	assert.Zero(t, registry.downloads[ghost.Key()])
}

func TestResolve_RegistryFailurePropagates(t *testing.T) {
	desc, _ := rootedDescriptor()
	registry := newStubRegistry("main")
	registry.infoErr = errors.New("connection refused")

	var locks atomic.Int32
	engine := newEngine(t, &locks, registry)

	_, err := engine.Resolve(t.Context(), desc, "")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRegistryRequestFailed.Error())
}

func TestResolve_DownloadFallsBackAcrossRegistries(t *testing.T) {
	// No registry carries metadata for the root, so the graph has no
	// authority record and downloads walk the priority order.
	desc, root := rootedDescriptor()

	primary := newStubRegistry("primary")
	primary.dlErr = errors.New("503")

	secondary := newStubRegistry("secondary")
	secondary.archives[root.Key()] = rootArchive(t)

	var locks atomic.Int32
	engine := newEngine(t, &locks, primary, secondary)

	refs, err := engine.Resolve(t.Context(), desc, "")
	require.NoError(t, err)
	assert.NotEmpty(t, refs)
	assert.Equal(t, 1, primary.downloads[root.Key()])
	assert.Equal(t, 1, secondary.downloads[root.Key()])
}

func TestResolve_DownloadFailureNamesPackage(t *testing.T) {
	desc, root := rootedDescriptor()
	registry := newStubRegistry("main")
	registry.addPackage(root, nil)
	registry.dlErr = errors.New("503")

	var locks atomic.Int32
	engine := newEngine(t, &locks, registry)

	_, err := engine.Resolve(t.Context(), desc, "")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDownloadFailed.Error())
}

func TestResolve_AssetlessDependencySkipped(t *testing.T) {
	desc, root := rootedDescriptor()
	base := domain.MustNewPackageIdentity("Base", "1.0.0")
	meta := domain.MustNewPackageIdentity("Meta", "1.0.0")
	desc = desc.WithPackages(base)

	registry := newStubRegistry("main")
	registry.addPackage(root, rootArchive(t))
	registry.addPackage(base, libArchive(t, "Base"), dep("Meta", "[1.0.0,)"))
	registry.addPackage(meta, makeArchive(t, map[string]string{"readme.txt": "nothing to compile"}))

	var locks atomic.Int32
	engine := newEngine(t, &locks, registry)

	refs, err := engine.Resolve(t.Context(), desc, "")
	require.NoError(t, err)

	assert.Contains(t, baseNames(refs), "Base.dll")
	assert.NotContains(t, baseNames(refs), "readme.txt")
	assert.Equal(t, 1, registry.downloads[meta.Key()], "asset-less packages are still fetched once")
}

func TestResolve_LowestAcceptableVersionWins(t *testing.T) {
	desc, root := rootedDescriptor()
	ext := domain.MustNewPackageIdentity("Ext", "1.0.0")
	lib := domain.MustNewPackageIdentity("Lib", "1.0.0")
	desc = desc.WithPackages(ext, lib)

	baseLow := domain.MustNewPackageIdentity("Base", "1.0.0")
	baseMid := domain.MustNewPackageIdentity("Base", "1.5.0")

	registry := newStubRegistry("main")
	registry.addPackage(root, rootArchive(t))
	registry.addPackage(ext, libArchive(t, "Ext"), dep("Base", "[1.0.0,2.0.0)"))
	registry.addPackage(lib, libArchive(t, "Lib"), dep("Base", "[1.5.0,)"))
	registry.addPackage(baseLow, libArchive(t, "Base"))
	registry.addPackage(baseMid, libArchive(t, "Base"))

	var locks atomic.Int32
	engine := newEngine(t, &locks, registry)

	refs, err := engine.Resolve(t.Context(), desc, "")
	require.NoError(t, err)

	var basePath string
	for _, ref := range refs {
		if filepath.Base(ref.Path) == "Base.dll" {
			basePath = ref.Path
		}
	}
	require.NotEmpty(t, basePath)
	assert.Contains(t, basePath, "base.1.5.0", "the lowest version satisfying every constraint is installed")
	assert.Zero(t, registry.downloads[baseLow.Key()], "rejected candidates are never fetched")
}

func TestResolve_VersionConflict(t *testing.T) {
	desc, root := rootedDescriptor()
	ext := domain.MustNewPackageIdentity("Ext", "1.0.0")
	basePinned := domain.MustNewPackageIdentity("Base", "2.0.0")
	desc = desc.WithPackages(ext, basePinned)

	baseLow := domain.MustNewPackageIdentity("Base", "1.0.0")

	registry := newStubRegistry("main")
	registry.addPackage(root, rootArchive(t))
	registry.addPackage(ext, libArchive(t, "Ext"), dep("Base", "[1.0.0,2.0.0)"))
	registry.addPackage(baseLow, libArchive(t, "Base"))
	registry.addPackage(basePinned, libArchive(t, "Base"))

	var locks atomic.Int32
	engine := newEngine(t, &locks, registry)

	_, err := engine.Resolve(t.Context(), desc, "")
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestResolve_RefWinsOverLib(t *testing.T) {
	desc, root := rootedDescriptor()
	base := domain.MustNewPackageIdentity("Base", "1.0.0")
	desc = desc.WithPackages(base)

	registry := newStubRegistry("main")
	registry.addPackage(root, rootArchive(t))
	registry.addPackage(base, makeArchive(t, map[string]string{
		"ref/net462/Base.dll":      "contract",
		"lib/net462/Base.dll":      "implementation",
		"lib/net462/Base.Impl.dll": "implementation only",
	}))

	var locks atomic.Int32
	engine := newEngine(t, &locks, registry)

	refs, err := engine.Resolve(t.Context(), desc, "")
	require.NoError(t, err)

	names := baseNames(refs)
	assert.Contains(t, names, "Base.dll")
	assert.NotContains(t, names, "Base.Impl.dll", "lib assets must not leak past a ref group")
	for _, ref := range refs {
		assert.NotContains(t, filepath.ToSlash(ref.Path), "/lib/")
	}
}

func TestResolve_FrameworkReferencesResolveAgainstRoot(t *testing.T) {
	desc, root := rootedDescriptor()
	base := domain.MustNewPackageIdentity("Base", "1.0.0")
	desc = desc.WithPackages(base)

	registry := newStubRegistry("main")
	registry.addPackage(root, rootArchive(t))
	registry.addPackage(base, makeArchive(t, map[string]string{
		"lib/net462/Base.dll": "implementation",
		"manifest.json": `{
			"id": "Base",
			"version": "1.0.0",
			"frameworkReferences": [
				{"framework": "net462", "assemblies": ["System.Net.Http", "System.NotOnDisk"]}
			]
		}`,
	}))

	var locks atomic.Int32
	engine := newEngine(t, &locks, registry)

	refs, err := engine.Resolve(t.Context(), desc, "")
	require.NoError(t, err)

	names := baseNames(refs)
	assert.Contains(t, names, "System.Net.Http.dll")
	assert.NotContains(t, names, "System.NotOnDisk.dll", "entries missing on disk are skipped")
}
