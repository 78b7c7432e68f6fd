package resolver

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/zerr"
)

// resolveVersions turns the dependency graph into a concrete install list
// under lowest-acceptable-version policy: for every package id reachable in
// the graph, the lowest graph-reachable version satisfying every transitive
// constraint is selected. Lowest-wins favors reproducibility over freshness.
// The root package, when present, is pinned first and exempt from selection.
func resolveVersions(graph domain.DependencyGraph, root *domain.PackageIdentity, extras []domain.PackageIdentity) (domain.InstallSet, error) {
	constraints := make(map[string][]domain.VersionRange)

	// Every graph edge contributes a constraint on its target id.
	for _, info := range graph {
		for _, dep := range info.Dependencies {
			lid := strings.ToLower(dep.ID)
			constraints[lid] = append(constraints[lid], dep.Range)
		}
	}
	// A requested extra package is a minimum-version request.
	for _, extra := range extras {
		lid := strings.ToLower(extra.ID)
		constraints[lid] = append(constraints[lid], domain.VersionRange{Min: extra.Version, IncludeMin: true})
	}

	// Candidate versions are the identities actually reachable in the graph.
	type candidateSet struct {
		id       string // original casing, first seen
		versions []*semver.Version
	}
	candidates := make(map[string]*candidateSet)
	for _, info := range graph {
		lid := strings.ToLower(info.Identity.ID)
		set, ok := candidates[lid]
		if !ok {
			set = &candidateSet{id: info.Identity.ID}
			candidates[lid] = set
		}
		set.versions = append(set.versions, info.Identity.Version)
	}

	var rootLID string
	install := make(domain.InstallSet, 0, len(candidates)+1)
	if root != nil {
		rootLID = strings.ToLower(root.ID)
		install = append(install, *root)
	}

	lids := make([]string, 0, len(candidates))
	for lid := range candidates {
		if lid == rootLID && root != nil {
			continue
		}
		lids = append(lids, lid)
	}
	sort.Strings(lids)

	for _, lid := range lids {
		set := candidates[lid]
		sort.Slice(set.versions, func(i, j int) bool {
			return set.versions[i].LessThan(set.versions[j])
		})

		var chosen *semver.Version
		for _, v := range set.versions {
			if satisfiesAll(v, constraints[lid]) {
				chosen = v
				break
			}
		}
		if chosen == nil {
			err := zerr.With(domain.ErrVersionConflict, "package", set.id)
			return nil, zerr.With(err, "constraints", rangeStrings(constraints[lid]))
		}
		install = append(install, domain.PackageIdentity{ID: set.id, Version: chosen})
	}

	return install, nil
}

func satisfiesAll(v *semver.Version, ranges []domain.VersionRange) bool {
	for _, r := range ranges {
		if !r.Satisfies(v) {
			return false
		}
	}
	return true
}

func rangeStrings(ranges []domain.VersionRange) []string {
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.String()
	}
	return out
}
