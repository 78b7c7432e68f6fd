package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refset/internal/core/domain"
)

func TestParsePackageIdentity(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		pkg, err := domain.ParsePackageIdentity("Newtonsoft.Json@13.0.3")
		require.NoError(t, err)
		assert.Equal(t, "Newtonsoft.Json", pkg.ID)
		assert.Equal(t, "13.0.3", pkg.Version.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, input := range []string{
			"",
			"no-version",
			"@1.0.0",
			"pkg@",
			"pkg@not.a.version",
			// Range notation is a constraint syntax, not an identity.
			"pkg@[1.0.0,2.0.0)",
		} {
			_, err := domain.ParsePackageIdentity(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestPackageIdentity_Equality(t *testing.T) {
	a := domain.MustNewPackageIdentity("Base", "1.0.0")
	b := domain.MustNewPackageIdentity("base", "1.0.0")
	c := domain.MustNewPackageIdentity("Base", "1.0.1")

	assert.True(t, a.Equals(b), "ids compare case-insensitively")
	assert.False(t, a.Equals(c), "versions compare exactly")
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestPackageIdentity_String(t *testing.T) {
	pkg := domain.MustNewPackageIdentity("Base", "1.0.0")
	assert.Equal(t, "Base@1.0.0", pkg.String())
	assert.Equal(t, "base@1.0.0", pkg.Key())
}

func TestDependencyGraph(t *testing.T) {
	graph := make(domain.DependencyGraph)
	base := domain.MustNewPackageIdentity("Base", "1.0.0")

	assert.False(t, graph.Contains(base))
	graph.Add(domain.DependencyInfo{Identity: base, Source: "main"})
	assert.True(t, graph.Contains(base))

	// Case variants hit the same node.
	assert.True(t, graph.Contains(domain.MustNewPackageIdentity("BASE", "1.0.0")))
	assert.Len(t, graph, 1)
}
