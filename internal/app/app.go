// Package app implements the application layer for molt.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/molt/internal/core/domain"
	"go.trai.ch/molt/internal/core/ports"
	"go.trai.ch/molt/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg      *domain.Config
	resolver *resolver.Resolver
	writer   ports.ManifestWriter
	logger   ports.Logger
}

// New creates a new App instance.
func New(cfg *domain.Config, res *resolver.Resolver, writer ports.ManifestWriter, logger ports.Logger) *App {
	return &App{
		cfg:      cfg,
		resolver: res,
		writer:   writer,
		logger:   logger,
	}
}

// PinOptions overrides configured paths for a single pin run. Zero values
// fall back to the loaded configuration.
type PinOptions struct {
	LockPath   string
	OutputPath string
}

// Pin reads the lock file, resolves every pinned package against the
// registries and writes the cache manifest. No manifest is written when any
// package fails to resolve.
func (a *App) Pin(ctx context.Context, opts PinOptions) error {
	lockPath := opts.LockPath
	if lockPath == "" {
		lockPath = a.cfg.LockPath
	}
	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = a.cfg.OutputPath
	}

	// 1. Read and parse the lock file
	raw, err := os.ReadFile(lockPath)
	if err != nil {
		return zerr.Wrap(err, "failed to read lock file")
	}
	lock, err := domain.ParseLockfile(raw)
	if err != nil {
		return zerr.Wrap(err, "failed to parse lock file")
	}

	// 2. Resolve every pinned package
	manifest, err := a.resolver.Resolve(ctx, lock)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve lock file")
	}

	data, err := manifest.Serialize()
	if err != nil {
		return zerr.Wrap(err, "failed to serialize manifest")
	}

	// 3. Skip the write when the manifest on disk is already identical, so
	// downstream mtime-based tooling does not retrigger.
	if existing, rerr := os.ReadFile(outputPath); rerr == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			a.logger.Info(fmt.Sprintf("manifest unchanged, leaving %s as is", outputPath))
			return nil
		}
	}

	if err := a.writer.Write(outputPath, data); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}

	a.logger.Info(fmt.Sprintf(
		"pinned %d jsr and %d npm packages to %s",
		len(manifest.JSRPackages), len(manifest.NpmPackages), outputPath,
	))
	return nil
}
