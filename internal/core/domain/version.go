package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// VersionRange is an interval of acceptable versions in package-manager
// bracket notation:
//
//	1.2.3        minimum 1.2.3, inclusive, unbounded above
//	[1.2.3]      exactly 1.2.3
//	[1.0.0,2.0.0)  1.0.0 <= v < 2.0.0
//	(,2.0.0]     unbounded below, v <= 2.0.0
//
// A nil bound means unbounded on that side.
type VersionRange struct {
	Min        *semver.Version
	Max        *semver.Version
	IncludeMin bool
	IncludeMax bool

	raw string
}

// ParseVersionRange parses a version range string.
func ParseVersionRange(s string) (VersionRange, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", s)
	}

	// Bare version: minimum bound, inclusive, open above.
	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "(") {
		v, err := semver.NewVersion(trimmed)
		if err != nil {
			return VersionRange{}, zerr.Wrap(err, ErrInvalidVersionRange.Error())
		}
		return VersionRange{Min: v, IncludeMin: true, raw: trimmed}, nil
	}

	last := trimmed[len(trimmed)-1]
	if last != ']' && last != ')' {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", s)
	}

	r := VersionRange{
		IncludeMin: trimmed[0] == '[',
		IncludeMax: last == ']',
		raw:        trimmed,
	}

	inner := trimmed[1 : len(trimmed)-1]
	lo, hi, comma := strings.Cut(inner, ",")
	if !comma {
		// Exact pin: [1.2.3]
		if !r.IncludeMin || !r.IncludeMax || lo == "" {
			return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", s)
		}
		v, err := semver.NewVersion(strings.TrimSpace(lo))
		if err != nil {
			return VersionRange{}, zerr.Wrap(err, ErrInvalidVersionRange.Error())
		}
		r.Min, r.Max = v, v
		return r, nil
	}

	if lo = strings.TrimSpace(lo); lo != "" {
		v, err := semver.NewVersion(lo)
		if err != nil {
			return VersionRange{}, zerr.Wrap(err, ErrInvalidVersionRange.Error())
		}
		r.Min = v
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		v, err := semver.NewVersion(hi)
		if err != nil {
			return VersionRange{}, zerr.Wrap(err, ErrInvalidVersionRange.Error())
		}
		r.Max = v
	}
	if r.Min == nil && r.Max == nil {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", s)
	}
	return r, nil
}

// MustParseVersionRange parses a range and panics on failure. Intended for
// static preset definitions.
func MustParseVersionRange(s string) VersionRange {
	r, err := ParseVersionRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Satisfies reports whether the version falls inside the range.
func (r VersionRange) Satisfies(v *semver.Version) bool {
	if v == nil {
		return false
	}
	if r.Min != nil {
		cmp := v.Compare(r.Min)
		if cmp < 0 || (cmp == 0 && !r.IncludeMin) {
			return false
		}
	}
	if r.Max != nil {
		cmp := v.Compare(r.Max)
		if cmp > 0 || (cmp == 0 && !r.IncludeMax) {
			return false
		}
	}
	return true
}

// MinVersion returns the lower bound of the range, used as the candidate
// identity during graph expansion. Nil when the range is unbounded below.
func (r VersionRange) MinVersion() *semver.Version {
	return r.Min
}

// String returns the canonical text form of the range.
func (r VersionRange) String() string {
	if r.raw != "" {
		return r.raw
	}
	var b strings.Builder
	if r.IncludeMin {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if r.Min != nil {
		b.WriteString(r.Min.String())
	}
	b.WriteByte(',')
	if r.Max != nil {
		b.WriteString(r.Max.String())
	}
	if r.IncludeMax {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
