// Package domain contains the core value types of the reference set resolver.
package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// PackageIdentity uniquely identifies a package. IDs compare
// case-insensitively, versions compare exactly.
type PackageIdentity struct {
	ID      string
	Version *semver.Version
}

// NewPackageIdentity creates a package identity from an id and a parsed version.
func NewPackageIdentity(id string, version *semver.Version) PackageIdentity {
	return PackageIdentity{ID: id, Version: version}
}

// MustNewPackageIdentity creates a package identity from an id and a version
// string, panicking on an invalid version. For static catalog construction.
func MustNewPackageIdentity(id, version string) PackageIdentity {
	return PackageIdentity{ID: id, Version: semver.MustParse(version)}
}

// ParsePackageIdentity parses an "id@version" reference.
func ParsePackageIdentity(s string) (PackageIdentity, error) {
	id, rest, ok := strings.Cut(s, "@")
	if !ok || id == "" || rest == "" {
		return PackageIdentity{}, zerr.With(ErrInvalidIdentity, "ref", s)
	}
	version, err := semver.NewVersion(rest)
	if err != nil {
		return PackageIdentity{}, zerr.Wrap(err, ErrInvalidVersion.Error())
	}
	return PackageIdentity{ID: id, Version: version}, nil
}

// Key returns the canonical map key for the identity: the lower-cased id
// joined with the exact version.
func (p PackageIdentity) Key() string {
	return strings.ToLower(p.ID) + "@" + p.Version.String()
}

// Equals reports whether two identities refer to the same package version.
// IDs are compared case-insensitively.
func (p PackageIdentity) Equals(other PackageIdentity) bool {
	return strings.EqualFold(p.ID, other.ID) && p.Version.Equal(other.Version)
}

// String returns the "id@version" form of the identity.
func (p PackageIdentity) String() string {
	return p.ID + "@" + p.Version.String()
}

// Dependency is a single declared dependency edge: a package id and the
// version range accepted for it.
type Dependency struct {
	ID    string
	Range VersionRange
}

// DependencyInfo is the dependency record for one package identity, as
// reported by the first registry that responded for it.
type DependencyInfo struct {
	Identity     PackageIdentity
	Dependencies []Dependency

	// Source names the registry that answered for this identity. Downloads
	// for the identity go to the same registry.
	Source string
}

// DependencyGraph maps identity keys to their dependency records. A node is
// recorded at most once per resolution.
type DependencyGraph map[string]DependencyInfo

// Contains reports whether the graph already holds a record for the identity.
func (g DependencyGraph) Contains(id PackageIdentity) bool {
	_, ok := g[id.Key()]
	return ok
}

// Add records the dependency info under its identity key.
func (g DependencyGraph) Add(info DependencyInfo) {
	g[info.Identity.Key()] = info
}

// InstallSet is the ordered list of concrete package versions chosen by the
// conflict resolver. The root package, when present, is always first.
type InstallSet []PackageIdentity
