package resolver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/refset/internal/core/frameworks"
)

// collect walks the install list and gathers the final assembly path set:
// nearest ref-or-lib assets per package, framework references resolved
// against the root installation, explicitly named assemblies, and facades.
// Paths are absolute, deduplicated, and sorted for deterministic output.
func (e *Engine) collect(
	desc *domain.Descriptor,
	lang string,
	target frameworks.Framework,
	install domain.InstallSet,
	installed map[string]string,
) ([]string, error) {
	seen := make(map[string]struct{})
	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = filepath.Clean(path)
		}
		seen[abs] = struct{}{}
	}

	rootDir := e.rootAssetDir(desc, installed)

	for _, identity := range install {
		dir, ok := installed[identity.Key()]
		if !ok {
			continue
		}
		contents, err := e.store.Contents(dir)
		if err != nil {
			return nil, err
		}

		// Ref wins over lib: a package shipping contract assemblies never
		// contributes its implementation ones.
		if group := selectAssetGroup(target, contents.Groups); group != nil {
			for _, file := range group.Files {
				if !strings.EqualFold(filepath.Ext(file), domain.AssemblyExt) {
					continue
				}
				add(filepath.Join(dir, filepath.FromSlash(file)))
			}
		}

		// Framework references are considered regardless of the ref/lib
		// outcome; entries missing on disk are skipped.
		if rootDir != "" {
			if fr := nearestFrameworkReferences(target, contents.FrameworkReferences); fr != nil {
				for _, name := range fr.AssemblyNames {
					addIfExists(add, filepath.Join(rootDir, name+domain.AssemblyExt))
				}
			}
		}
	}

	if rootDir != "" {
		names := append([]string(nil), desc.Assemblies...)
		if extra, ok := desc.AssembliesForLanguage(lang); ok {
			names = append(names, extra...)
		}
		for _, name := range names {
			addIfExists(add, filepath.Join(rootDir, name+domain.AssemblyExt))
		}

		// Every facade assembly of the root installation rides along.
		facades := filepath.Join(rootDir, domain.FacadesDirName)
		if entries, err := os.ReadDir(facades); err == nil {
			for _, entry := range entries {
				if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), domain.AssemblyExt) {
					continue
				}
				add(filepath.Join(facades, entry.Name()))
			}
		}
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// rootAssetDir returns the reference-assembly directory inside the installed
// root package, or "" when the descriptor has no root or it is not installed.
func (e *Engine) rootAssetDir(desc *domain.Descriptor, installed map[string]string) string {
	if desc.RootPackage == nil {
		return ""
	}
	dir, ok := installed[desc.RootPackage.Key()]
	if !ok {
		return ""
	}
	return filepath.Join(dir, filepath.FromSlash(desc.RootAssetPath))
}

// selectAssetGroup picks the asset group to compile against: the nearest ref
// group when one exists, otherwise the nearest lib group.
func selectAssetGroup(target frameworks.Framework, groups []domain.AssetGroup) *domain.AssetGroup {
	for _, kind := range [2]domain.AssetKind{domain.AssetRef, domain.AssetLib} {
		if group := nearestGroup(target, kind, groups); group != nil {
			return group
		}
	}
	return nil
}

// nearestGroup returns the group of the given kind whose framework is nearest
// to the target, or nil when none is compatible. Distinct folder names can
// parse to the same framework; the first such group in enumeration order wins.
func nearestGroup(target frameworks.Framework, kind domain.AssetKind, groups []domain.AssetGroup) *domain.AssetGroup {
	var candidates []frameworks.Framework
	var indexes []int

	for i := range groups {
		if groups[i].Kind != kind {
			continue
		}
		fw, err := frameworks.Parse(groups[i].Framework)
		if err != nil {
			// Unknown framework folders are ignored, matching how unknown
			// TFMs are excluded from nearest-match ordering.
			continue
		}
		candidates = append(candidates, fw)
		indexes = append(indexes, i)
	}

	nearest := frameworks.Nearest(target, candidates)
	if nearest == nil {
		return nil
	}
	for j := range candidates {
		if candidates[j] == *nearest {
			return &groups[indexes[j]]
		}
	}
	return nil
}

// nearestFrameworkReferences picks the framework-reference group nearest to
// the target.
func nearestFrameworkReferences(target frameworks.Framework, refs []domain.FrameworkReference) *domain.FrameworkReference {
	var candidates []frameworks.Framework
	var indexes []int

	for i := range refs {
		fw, err := frameworks.Parse(refs[i].Framework)
		if err != nil {
			continue
		}
		candidates = append(candidates, fw)
		indexes = append(indexes, i)
	}

	nearest := frameworks.Nearest(target, candidates)
	if nearest == nil {
		return nil
	}
	for j := range candidates {
		if candidates[j] == *nearest {
			return &refs[indexes[j]]
		}
	}
	return nil
}

func addIfExists(add func(string), path string) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		add(path)
	}
}
