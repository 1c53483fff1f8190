package resolver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/molt/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseJSRKey splits a lock key "<scope>/<name>@<version>" into its package
// name ("@scope/name") and version.
func parseJSRKey(key string) (name, version string, err error) {
	i := strings.LastIndex(key, "@")
	if i <= 0 {
		return "", "", zerr.With(domain.ErrMalformedLock, "jsr_key", key)
	}
	name, version = key[:i], key[i+1:]
	if !strings.HasPrefix(name, "@") || !strings.Contains(name, "/") || version == "" {
		return "", "", zerr.With(domain.ErrMalformedLock, "jsr_key", key)
	}
	return name, version, nil
}

// resolveJSRPackage builds the full file list for one registry package: every
// source file declared in the version metadata (path-sorted), followed by the
// package index and the version index. Exactly two fetches happen per package;
// the version metadata doubles as the version index document.
func (r *Resolver) resolveJSRPackage(ctx context.Context, key, integrity string) (domain.JSRPackage, error) {
	name, version, err := parseJSRKey(key)
	if err != nil {
		return domain.JSRPackage{}, err
	}

	versionMetaURL := fmt.Sprintf("%s/%s/%s_meta.json", r.jsrRegistry, name, version)
	rawVersionMeta, err := r.client.FetchBytes(ctx, versionMetaURL)
	if err != nil {
		return domain.JSRPackage{}, err
	}

	var meta domain.RegistryVersionMeta
	if err := json.Unmarshal(rawVersionMeta, &meta); err != nil {
		ferr := zerr.With(domain.ErrFetchFailed, "url", versionMetaURL)
		return domain.JSRPackage{}, zerr.With(ferr, "cause", "invalid version metadata document")
	}

	paths := make([]string, 0, len(meta.Manifest))
	for p := range meta.Manifest {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	files := make([]domain.RegistryFile, 0, len(paths)+2)
	for _, p := range paths {
		// The declared checksum carries a required literal prefix; anything
		// else in front of the hex would be silently corrupted by stripping.
		digest, ok := strings.CutPrefix(meta.Manifest[p].Checksum, "sha256-")
		if !ok {
			ierr := zerr.With(domain.ErrInvalidInput, "package", name)
			ierr = zerr.With(ierr, "path", p)
			return domain.JSRPackage{}, zerr.With(ierr, "checksum", meta.Manifest[p].Checksum)
		}

		fileURL := r.jsrRegistry + "/" + name + p
		cachePath, err := domain.URLToCachePath(fileURL)
		if err != nil {
			return domain.JSRPackage{}, err
		}

		files = append(files, domain.RegistryFile{
			URL:       fileURL,
			SHA256:    digest,
			CachePath: cachePath,
			MediaType: domain.GuessMediaType(p),
		})
	}

	// The registry's own index documents must land in the cache too, or the
	// runtime re-fetches them at execution time.
	packageIndexURL := r.jsrRegistry + "/" + name + "/meta.json"
	rawPackageIndex, err := r.client.FetchBytes(ctx, packageIndexURL)
	if err != nil {
		return domain.JSRPackage{}, err
	}

	packageIndex, err := indexFile(packageIndexURL, rawPackageIndex)
	if err != nil {
		return domain.JSRPackage{}, err
	}
	versionIndex, err := indexFile(versionMetaURL, rawVersionMeta)
	if err != nil {
		return domain.JSRPackage{}, err
	}
	files = append(files, packageIndex, versionIndex)

	return domain.JSRPackage{
		Name:      name,
		Version:   version,
		Integrity: integrity,
		Files:     files,
	}, nil
}

// indexFile records a registry index document as a manifest entry, hashing
// the raw response bytes.
func indexFile(url string, raw []byte) (domain.RegistryFile, error) {
	cachePath, err := domain.URLToCachePath(url)
	if err != nil {
		return domain.RegistryFile{}, err
	}
	sum := sha256.Sum256(raw)
	return domain.RegistryFile{
		URL:       url,
		SHA256:    hex.EncodeToString(sum[:]),
		CachePath: cachePath,
		MediaType: domain.GuessMediaType(url),
	}, nil
}
