// Package config provides the configuration loader for refset.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Config is the effective configuration after defaults are applied.
type Config struct {
	// CacheRoot is the shared package cache directory.
	CacheRoot string
	// Registries are the package registries in query priority order.
	Registries []RegistrySpec
}

// Loader reads refset.yaml, walking up from the working directory.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration for the given working directory. A missing
// config file yields the defaults: the shared temp cache root and no
// registries.
func (l *Loader) Load(cwd string) (*Config, error) {
	cfg := &Config{CacheRoot: domain.DefaultCacheRoot()}

	path, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if file.CacheRoot != "" {
		cfg.CacheRoot = file.CacheRoot
	}
	for _, spec := range file.Registries {
		if spec.URL == "" {
			return nil, zerr.With(domain.ErrConfigParseFailed, "registry", spec.Name)
		}
		if spec.Name == "" {
			spec.Name = spec.URL
		}
		cfg.Registries = append(cfg.Registries, spec)
	}
	return cfg, nil
}

// findConfiguration walks up from cwd looking for refset.yaml. It returns ""
// when no config file exists anywhere up the tree.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
