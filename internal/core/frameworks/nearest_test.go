package frameworks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refset/internal/core/frameworks"
)

func monikers(t *testing.T, names ...string) []frameworks.Framework {
	t.Helper()
	out := make([]frameworks.Framework, len(names))
	for i, name := range names {
		out[i] = parse(t, name)
	}
	return out
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		candidates []string
		want       string
	}{
		{
			name:       "exact match wins",
			target:     "net472",
			candidates: []string{"net45", "net472", "netstandard2.0"},
			want:       "net472",
		},
		{
			name:       "highest compatible same-family version",
			target:     "net48",
			candidates: []string{"net20", "net45", "net462"},
			want:       "net462",
		},
		{
			name:       "same family beats netstandard bridge",
			target:     "net472",
			candidates: []string{"netstandard2.0", "net45"},
			want:       "net45",
		},
		{
			name:       "netstandard bridge beats any",
			target:     "net472",
			candidates: []string{"any", "netstandard2.0"},
			want:       "netstandard2.0",
		},
		{
			name:       "highest netstandard wins within bridges",
			target:     "net6.0",
			candidates: []string{"netstandard1.6", "netstandard2.1"},
			want:       "netstandard2.1",
		},
		{
			name:       "any as last resort",
			target:     "net472",
			candidates: []string{"any", "net6.0"},
			want:       "any",
		},
		{
			name:       "netcoreapp assets for net targets",
			target:     "net8.0",
			candidates: []string{"netcoreapp3.1", "net6.0"},
			want:       "net6.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameworks.Nearest(parse(t, tt.target), monikers(t, tt.candidates...))
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNearest_NoCompatibleCandidate(t *testing.T) {
	got := frameworks.Nearest(parse(t, "net20"), monikers(t, "net48", "netstandard2.0", "net6.0"))
	assert.Nil(t, got)
}

func TestNearest_EmptyCandidates(t *testing.T) {
	assert.Nil(t, frameworks.Nearest(parse(t, "net472"), nil))
}
