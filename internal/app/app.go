// Package app implements the application layer for refset.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/refset/internal/adapters/detector"
	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/refset/internal/core/ports"
	"go.trai.ch/refset/internal/engine/resolver"
	"go.trai.ch/refset/internal/presets"
	"go.trai.ch/refset/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	engine    *resolver.Engine
	logger    ports.Logger
	locker    ports.CacheLocker
	cacheRoot string
	stdout    io.Writer
}

// New creates a new App instance.
func New(
	engine *resolver.Engine,
	log ports.Logger,
	locker ports.CacheLocker,
	cacheRoot string,
) *App {
	return &App{
		engine:    engine,
		logger:    log,
		locker:    locker,
		cacheRoot: cacheRoot,
		stdout:    os.Stdout,
	}
}

// WithStdout redirects result output. This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// Preset names a catalog descriptor to resolve.
	Preset string
	// Framework is the target framework moniker when no preset is used.
	Framework string
	// Packages are extra package references, "id@version".
	Packages []string
	// Language selects language-specific assemblies: "csharp", "vb", or empty.
	Language string
	// JSON emits the reference set as JSON instead of a path list.
	JSON bool
	// OutputMode overrides output styling: auto, styled, plain, or ci.
	OutputMode string
}

// Resolve resolves a descriptor to its reference set and prints the paths.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	desc, err := a.buildDescriptor(opts)
	if err != nil {
		return err
	}

	refs, err := a.engine.Resolve(ctx, desc, normalizeLanguage(opts.Language))
	if err != nil {
		return err
	}
	return a.printReferences(refs, opts)
}

// buildDescriptor turns the CLI options into a descriptor: a catalog preset,
// optionally extended with extra packages, or a flag-built ad-hoc descriptor.
func (a *App) buildDescriptor(opts ResolveOptions) (*domain.Descriptor, error) {
	extras := make([]domain.PackageIdentity, 0, len(opts.Packages))
	for _, ref := range opts.Packages {
		identity, err := domain.ParsePackageIdentity(ref)
		if err != nil {
			return nil, err
		}
		extras = append(extras, identity)
	}

	if opts.Preset != "" {
		desc, err := presets.ByName(opts.Preset)
		if err != nil {
			return nil, err
		}
		if len(extras) > 0 {
			desc = desc.AddPackages(extras...)
		}
		return desc, nil
	}

	if opts.Framework == "" {
		return nil, zerr.With(domain.ErrInvalidFramework, "framework", "")
	}
	return domain.NewDescriptor(opts.Framework, nil, "").WithPackages(extras...), nil
}

// normalizeLanguage maps the CLI language flag onto the catalog language names.
func normalizeLanguage(flag string) string {
	switch strings.ToLower(flag) {
	case "csharp", "c#", "cs":
		return presets.LanguageCSharp
	case "vb", "visualbasic":
		return presets.LanguageVisualBasic
	case "":
		return ""
	default:
		return flag
	}
}

// printReferences writes the resolved paths: JSON when requested, otherwise a
// path list with a styled summary on interactive terminals.
func (a *App) printReferences(refs []domain.Reference, opts ResolveOptions) error {
	paths := make([]string, len(refs))
	for i, ref := range refs {
		paths[i] = ref.Path
	}

	if opts.JSON {
		encoder := json.NewEncoder(a.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			References []string `json:"references"`
		}{References: paths})
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	if mode == detector.ModeStyled {
		header := lipgloss.NewStyle().Foreground(style.Green).
			Render(fmt.Sprintf("%s %d references", style.Check, len(paths)))
		if _, err := fmt.Fprintln(a.stdout, header); err != nil {
			return err
		}
	}
	for _, path := range paths {
		if _, err := fmt.Fprintln(a.stdout, path); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes the shared package cache, holding the cross-process lock so
// no concurrent resolution is mid-extraction while the tree disappears.
func (a *App) Clean(ctx context.Context) error {
	unlock, err := a.locker.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	a.logger.Info("removing package cache", "path", a.cacheRoot)
	if err := os.RemoveAll(a.cacheRoot); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCleanFailed.Error())
	}
	a.logger.Info("removed package cache")
	return nil
}
