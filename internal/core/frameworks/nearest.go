package frameworks

// Nearest picks the candidate framework closest to the target under a
// monotonic compatibility ordering: incompatible candidates are excluded,
// same-family candidates beat .NET Standard bridges, and within a family the
// highest compatible version wins. The Any framework loses to every specific
// candidate. It returns nil when no candidate is compatible.
func Nearest(target Framework, candidates []Framework) *Framework {
	var best *Framework
	for i := range candidates {
		c := &candidates[i]
		if !c.IsCompatible(target) {
			continue
		}
		if c.Identifier == target.Identifier && c.Version.Compare(target.Version) == 0 {
			return c
		}
		if best == nil || closer(target, *c, *best) {
			best = c
		}
	}
	return best
}

// closer reports whether a is a better match for target than b.
func closer(target, a, b Framework) bool {
	ra, rb := familyRank(target, a), familyRank(target, b)
	if ra != rb {
		return ra > rb
	}
	return a.Version.Compare(b.Version) > 0
}

// familyRank orders candidate families by specificity for the target:
// the target's own family first, then .NET Standard, then Any.
func familyRank(target, c Framework) int {
	switch {
	case c.Identifier == target.Identifier:
		return 2
	case c.Identifier == IdentifierNetStandard:
		return 1
	default:
		return 0
	}
}
