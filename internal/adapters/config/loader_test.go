package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refset/internal/adapters/config"
	"go.trai.ch/refset/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	loader := config.NewLoader()

	t.Run("DefaultsWithoutFile", func(t *testing.T) {
		cfg, err := loader.Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCacheRoot(), cfg.CacheRoot)
		assert.Empty(t, cfg.Registries)
	})

	t.Run("ReadsFile", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
version: "1"
cacheRoot: /var/cache/refset
registries:
  - name: main
    url: https://pkgs.example.com
  - url: https://mirror.example.com
`)

		cfg, err := loader.Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "/var/cache/refset", cfg.CacheRoot)
		require.Len(t, cfg.Registries, 2)
		assert.Equal(t, "main", cfg.Registries[0].Name)
		// A nameless registry is identified by its URL.
		assert.Equal(t, "https://mirror.example.com", cfg.Registries[1].Name)
	})

	t.Run("WalksUp", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, "registries:\n  - url: https://pkgs.example.com\n")
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o750))

		cfg, err := loader.Load(nested)
		require.NoError(t, err)
		require.Len(t, cfg.Registries, 1)
	})

	t.Run("MissingURL", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "registries:\n  - name: broken\n")

		_, err := loader.Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "registries: [")

		_, err := loader.Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
	})
}
