// Package pkgcache implements the PackageStore port: a two-tier on-disk cache
// of extracted packages under the shared cache root.
package pkgcache

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/zerr"
)

// completeMarker is written last during extraction; a package directory
// without it is treated as absent.
const completeMarker = ".completed"

// Store implements ports.PackageStore over a local and a global cache tier.
type Store struct {
	localDir  string
	globalDir string
}

// NewStore creates a PackageStore rooted at the given cache root.
func NewStore(cacheRoot string) (*Store, error) {
	localDir := domain.LocalCacheDir(cacheRoot)
	if err := os.MkdirAll(localDir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}
	return &Store{
		localDir:  localDir,
		globalDir: domain.GlobalCacheDir(cacheRoot),
	}, nil
}

// InstalledPath probes the local tier, then the global tier, for an extracted
// copy of the package. Probe failures from overlong paths are reported as
// not-installed rather than propagated.
func (s *Store) InstalledPath(identity domain.PackageIdentity) (string, error) {
	for _, tier := range [2]string{s.localDir, s.globalDir} {
		dir := filepath.Join(tier, dirName(identity))
		_, err := os.Stat(filepath.Join(dir, completeMarker))
		switch {
		case err == nil:
			return dir, nil
		case errors.Is(err, fs.ErrNotExist) || isNameTooLong(err):
			continue
		default:
			return "", zerr.Wrap(err, domain.ErrNotInstalled.Error())
		}
	}
	return "", zerr.With(domain.ErrNotInstalled, "package", identity.String())
}

// Extract unpacks the archive into the local tier. With requireAssets set,
// archives without lib or ref entries are skipped without touching the disk.
// A package already extracted is reused as-is.
func (s *Store) Extract(ctx context.Context, identity domain.PackageIdentity, archive io.Reader, requireAssets bool) (string, bool, error) {
	data, err := io.ReadAll(archive)
	if err != nil {
		return "", false, zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", false, zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}

	if requireAssets && !hasCompileAssets(reader) {
		return "", false, nil
	}

	dest := filepath.Join(s.localDir, dirName(identity))
	if _, err := os.Stat(filepath.Join(dest, completeMarker)); err == nil {
		return dest, true, nil
	}

	if err := os.MkdirAll(dest, domain.DirPerm); err != nil {
		return "", false, zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		if err := extractFile(dest, file); err != nil {
			return "", false, err
		}
	}

	marker := filepath.Join(dest, completeMarker)
	if err := os.WriteFile(marker, nil, domain.FilePerm); err != nil {
		return "", false, zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	return dest, true, nil
}

// Contents enumerates the ref/lib asset groups of an installed package and
// reads its declared framework references from the manifest, when present.
func (s *Store) Contents(installedPath string) (*domain.PackageContents, error) {
	contents := &domain.PackageContents{}

	for _, kind := range [2]domain.AssetKind{domain.AssetRef, domain.AssetLib} {
		groups, err := assetGroups(installedPath, kind)
		if err != nil {
			return nil, err
		}
		contents.Groups = append(contents.Groups, groups...)
	}

	manifest, err := readManifest(installedPath)
	if err != nil {
		return nil, err
	}
	if manifest != nil {
		for _, ref := range manifest.FrameworkReferences {
			contents.FrameworkReferences = append(contents.FrameworkReferences, domain.FrameworkReference{
				Framework:     ref.Framework,
				AssemblyNames: append([]string(nil), ref.Assemblies...),
			})
		}
	}
	return contents, nil
}

// packageManifest is the on-disk manifest format inside an extracted package.
type packageManifest struct {
	ID                  string `json:"id"`
	Version             string `json:"version"`
	FrameworkReferences []struct {
		Framework  string   `json:"framework"`
		Assemblies []string `json:"assemblies"`
	} `json:"frameworkReferences,omitempty"`
}

func readManifest(installedPath string) (*packageManifest, error) {
	data, err := os.ReadFile(filepath.Join(installedPath, domain.ManifestFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}
	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}
	return &manifest, nil
}

// assetGroups reads one asset kind directory: each subdirectory is a
// framework-tagged group, files directly in the kind directory form an "any"
// group.
func assetGroups(installedPath string, kind domain.AssetKind) ([]domain.AssetGroup, error) {
	kindDir := filepath.Join(installedPath, string(kind))
	entries, err := os.ReadDir(kindDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	var groups []domain.AssetGroup
	var loose []string
	for _, entry := range entries {
		if !entry.IsDir() {
			loose = append(loose, filepath.ToSlash(filepath.Join(string(kind), entry.Name())))
			continue
		}
		files, err := groupFiles(kindDir, string(kind), entry.Name())
		if err != nil {
			return nil, err
		}
		if len(files) > 0 {
			groups = append(groups, domain.AssetGroup{Kind: kind, Framework: entry.Name(), Files: files})
		}
	}
	if len(loose) > 0 {
		groups = append(groups, domain.AssetGroup{Kind: kind, Framework: "any", Files: loose})
	}
	return groups, nil
}

func groupFiles(kindDir, kind, framework string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(kindDir, framework))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.ToSlash(filepath.Join(kind, framework, entry.Name())))
	}
	return files, nil
}

// hasCompileAssets reports whether the archive carries any lib or ref entry.
func hasCompileAssets(reader *zip.Reader) bool {
	for _, file := range reader.File {
		name := strings.ToLower(file.Name)
		if strings.HasPrefix(name, "lib/") || strings.HasPrefix(name, "ref/") {
			return true
		}
	}
	return false
}

// extractFile writes a single archive entry under dest, rejecting entries
// that would escape it.
func extractFile(dest string, file *zip.File) error {
	target := filepath.Join(dest, filepath.FromSlash(file.Name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return zerr.With(domain.ErrExtractFailed, "entry", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, domain.DirPerm)
	}
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}

	src, err := file.Open()
	if err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	return dst.Close()
}

// dirName is the installation directory name for an identity:
// lower-cased id dot exact version.
func dirName(identity domain.PackageIdentity) string {
	return strings.ToLower(identity.ID) + "." + identity.Version.String()
}

func isNameTooLong(err error) bool {
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == syscall.ENAMETOOLONG
}
