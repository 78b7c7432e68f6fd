// Package frameworks provides target framework moniker (TFM) parsing and
// compatibility checking for asset selection.
//
// It understands the short folder names packages use to tag their asset
// groups: net20 through net48 (.NET Framework, compact versions), net5.0 and
// later (.NET), netstandard1.0 through netstandard2.1, netcoreapp1.0 through
// netcoreapp3.1, and the special "any" framework.
package frameworks

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/zerr"
)

// Framework identifiers.
const (
	IdentifierNetFramework = ".NETFramework"
	IdentifierNetStandard  = ".NETStandard"
	IdentifierNetCoreApp   = ".NETCoreApp"
	IdentifierAny          = "Any"
)

// Framework is a parsed target framework moniker.
type Framework struct {
	Identifier string
	Version    Version
}

// Version is a framework version number.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// Compare orders two framework versions. It returns -1, 0 or 1.
func (v Version) Compare(other Version) int {
	for _, pair := range [4][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Build, other.Build},
		{v.Revision, other.Revision},
	} {
		if pair[0] != pair[1] {
			if pair[0] < pair[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String renders the version with trailing zero components trimmed,
// keeping at least major.minor: 4.7.2 stays, 6.0.0 becomes 6.0.
func (v Version) String() string {
	if v.Revision > 0 {
		return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
	}
	if v.Build > 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Any is the special framework that matches every target. Asset groups
// without a framework folder are treated as Any.
var Any = Framework{Identifier: IdentifierAny}

// IsAny reports whether the framework is the special Any framework.
func (f Framework) IsAny() bool {
	return f.Identifier == IdentifierAny
}

// String returns the short folder name of the framework.
func (f Framework) String() string {
	switch f.Identifier {
	case IdentifierAny:
		return "any"
	case IdentifierNetStandard:
		return "netstandard" + dotted(f.Version)
	case IdentifierNetCoreApp:
		if f.Version.Major >= 5 {
			return "net" + dotted(f.Version)
		}
		return "netcoreapp" + dotted(f.Version)
	case IdentifierNetFramework:
		return "net" + compact(f.Version)
	default:
		return strings.ToLower(f.Identifier) + dotted(f.Version)
	}
}

func dotted(v Version) string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
	if v.Build > 0 {
		s += "." + strconv.Itoa(v.Build)
	}
	return s
}

func compact(v Version) string {
	s := strconv.Itoa(v.Major) + strconv.Itoa(v.Minor)
	if v.Build > 0 {
		s += strconv.Itoa(v.Build)
	}
	return s
}

// Parse parses a short TFM such as "net472", "netstandard2.0", "netcoreapp3.1"
// or "net6.0".
func Parse(s string) (Framework, error) {
	moniker := strings.ToLower(strings.TrimSpace(s))
	if moniker == "" {
		return Framework{}, zerr.With(domain.ErrInvalidFramework, "tfm", s)
	}
	if moniker == "any" {
		return Any, nil
	}

	switch {
	case strings.HasPrefix(moniker, "netstandard"):
		v, err := parseDotted(strings.TrimPrefix(moniker, "netstandard"))
		if err != nil {
			return Framework{}, zerr.Wrap(err, domain.ErrInvalidFramework.Error())
		}
		return Framework{Identifier: IdentifierNetStandard, Version: v}, nil

	case strings.HasPrefix(moniker, "netcoreapp"):
		v, err := parseDotted(strings.TrimPrefix(moniker, "netcoreapp"))
		if err != nil {
			return Framework{}, zerr.Wrap(err, domain.ErrInvalidFramework.Error())
		}
		return Framework{Identifier: IdentifierNetCoreApp, Version: v}, nil

	case strings.HasPrefix(moniker, "net"):
		rest := strings.TrimPrefix(moniker, "net")
		if rest == "" {
			return Framework{}, zerr.With(domain.ErrInvalidFramework, "tfm", s)
		}
		if strings.Contains(rest, ".") {
			// Dotted "net" versions are .NET 5+ (netX.Y); 4.x and below keep
			// the compact .NET Framework form.
			v, err := parseDotted(rest)
			if err != nil {
				return Framework{}, zerr.Wrap(err, domain.ErrInvalidFramework.Error())
			}
			if v.Major >= 5 {
				return Framework{Identifier: IdentifierNetCoreApp, Version: v}, nil
			}
			return Framework{Identifier: IdentifierNetFramework, Version: v}, nil
		}
		v, err := parseCompact(rest)
		if err != nil {
			return Framework{}, zerr.Wrap(err, domain.ErrInvalidFramework.Error())
		}
		return Framework{Identifier: IdentifierNetFramework, Version: v}, nil
	}

	return Framework{}, zerr.With(domain.ErrInvalidFramework, "tfm", s)
}

// parseDotted parses "2.0", "3.1" or "6.0.1" style versions.
func parseDotted(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid framework version %q", s)
	}
	var v Version
	fields := []*int{&v.Major, &v.Minor, &v.Build}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid framework version %q", s)
		}
		*fields[i] = n
	}
	return v, nil
}

// parseCompact parses compact .NET Framework versions: "48" is 4.8,
// "472" is 4.7.2.
func parseCompact(s string) (Version, error) {
	if len(s) < 2 || len(s) > 4 {
		return Version{}, fmt.Errorf("invalid compact framework version %q", s)
	}
	digits := make([]int, len(s))
	for i, c := range s {
		if c < '0' || c > '9' {
			return Version{}, fmt.Errorf("invalid compact framework version %q", s)
		}
		digits[i] = int(c - '0')
	}
	v := Version{Major: digits[0], Minor: digits[1]}
	if len(digits) > 2 {
		v.Build = digits[2]
	}
	if len(digits) > 3 {
		v.Revision = digits[3]
	}
	return v, nil
}

// netStandardToFramework maps a .NET Standard version to the minimum
// .NET Framework version that implements it. .NET Standard 2.1 is absent:
// no .NET Framework implements it.
var netStandardToFramework = map[Version]Version{
	{Major: 1, Minor: 0}: {Major: 4, Minor: 5},
	{Major: 1, Minor: 1}: {Major: 4, Minor: 5},
	{Major: 1, Minor: 2}: {Major: 4, Minor: 5, Build: 1},
	{Major: 1, Minor: 3}: {Major: 4, Minor: 6},
	{Major: 1, Minor: 4}: {Major: 4, Minor: 6, Build: 1},
	{Major: 1, Minor: 5}: {Major: 4, Minor: 6, Build: 1},
	{Major: 1, Minor: 6}: {Major: 4, Minor: 6, Build: 1},
	{Major: 2, Minor: 0}: {Major: 4, Minor: 6, Build: 1},
}

// netStandardToCoreApp maps a .NET Standard version to the minimum
// .NET Core version that implements it.
var netStandardToCoreApp = map[Version]Version{
	{Major: 1, Minor: 0}: {Major: 1, Minor: 0},
	{Major: 1, Minor: 1}: {Major: 1, Minor: 0},
	{Major: 1, Minor: 2}: {Major: 1, Minor: 0},
	{Major: 1, Minor: 3}: {Major: 1, Minor: 0},
	{Major: 1, Minor: 4}: {Major: 1, Minor: 0},
	{Major: 1, Minor: 5}: {Major: 1, Minor: 0},
	{Major: 1, Minor: 6}: {Major: 1, Minor: 0},
	{Major: 2, Minor: 0}: {Major: 2, Minor: 0},
	{Major: 2, Minor: 1}: {Major: 3, Minor: 0},
}

// IsCompatible reports whether a package asset group tagged with f can be
// consumed by a project targeting target.
func (f Framework) IsCompatible(target Framework) bool {
	if f.IsAny() || target.IsAny() {
		return true
	}
	if f.Identifier == target.Identifier {
		return f.Version.Compare(target.Version) <= 0
	}
	if f.Identifier == IdentifierNetStandard {
		key := Version{Major: f.Version.Major, Minor: f.Version.Minor}
		switch target.Identifier {
		case IdentifierNetFramework:
			minimum, ok := netStandardToFramework[key]
			return ok && target.Version.Compare(minimum) >= 0
		case IdentifierNetCoreApp:
			minimum, ok := netStandardToCoreApp[key]
			return ok && target.Version.Compare(minimum) >= 0
		}
	}
	return false
}
