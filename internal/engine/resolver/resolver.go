// Package resolver turns a parsed lock file into a cache manifest.
package resolver

import (
	"context"
	"fmt"
	"sort"

	"go.trai.ch/molt/internal/core/domain"
	"go.trai.ch/molt/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Resolver resolves every package pinned in a lock file into the flat,
// content-addressed manifest a deterministic prefetch step consumes.
type Resolver struct {
	client      ports.RegistryClient
	logger      ports.Logger
	telemetry   ports.Telemetry
	jsrRegistry string
	npmRegistry string
	concurrency int
}

// NewResolver creates a Resolver. Registry base URLs and the concurrency cap
// come from configuration.
func NewResolver(
	client ports.RegistryClient,
	logger ports.Logger,
	telemetry ports.Telemetry,
	cfg *domain.Config,
) *Resolver {
	return &Resolver{
		client:      client,
		logger:      logger,
		telemetry:   telemetry,
		jsrRegistry: cfg.JSRRegistry,
		npmRegistry: cfg.NpmRegistry,
		concurrency: cfg.Concurrency,
	}
}

// Resolve fans out over all JSR entries under the concurrency cap, resolves
// npm entries synchronously, and returns the assembled manifest sorted by
// (name, version). The contract is all-or-nothing: any package failure fails
// the whole run and no partial manifest is returned.
func (r *Resolver) Resolve(ctx context.Context, lock *domain.Lockfile) (*domain.Manifest, error) {
	if !lock.VersionSupported() {
		r.logger.Warn(fmt.Sprintf("unexpected lock file version %q, resolving anyway", lock.Version))
	}

	// Sorted key iteration keeps goroutine dispatch order, and therefore
	// first-seen semantics, deterministic.
	keys := sortedKeys(lock.JSR)
	jsrPackages := make([]domain.JSRPackage, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, key := range keys {
		g.Go(func() error {
			vtx := r.telemetry.Record(gctx, "jsr:"+key)
			pkg, err := r.resolveJSRPackage(gctx, key, lock.JSR[key].Integrity)
			vtx.Complete(err)
			if err != nil {
				return err
			}
			// Each goroutine writes only its own slot; completion order
			// never reaches the manifest.
			jsrPackages[i] = pkg
			return nil
		})
	}

	npmPackages, npmErr := resolveNpmPackages(lock.NPM, r.npmRegistry)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if npmErr != nil {
		return nil, npmErr
	}

	manifest := &domain.Manifest{
		LockVersion: lock.Version,
		JSRPackages: jsrPackages,
		NpmPackages: npmPackages,
	}
	manifest.Sort()
	return manifest, nil
}

func sortedKeys(m map[string]domain.LockEntry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
