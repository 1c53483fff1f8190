package resolver

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"go.trai.ch/molt/internal/core/domain"
	"go.trai.ch/zerr"
)

// npmCachePrefix is the runtime's fixed on-disk layout for npm tarballs. It
// names the canonical registry host regardless of which registry the tarball
// is downloaded from.
const npmCachePrefix = "npm/registry.npmjs.org"

// parseNpmKey splits a lock key "<name>@<version>[_<peerqualifier>]" into
// name and version. Scoped names keep their leading "@", so the version
// separator is the second "@" for them. The peer qualifier, everything from
// the first underscore of the version on, is discarded.
func parseNpmKey(key string) (name, version string, err error) {
	rest := key
	offset := 0
	if strings.HasPrefix(key, "@") {
		rest = key[1:]
		offset = 1
	}
	i := strings.Index(rest, "@")
	if i < 0 {
		return "", "", zerr.With(domain.ErrMalformedLock, "npm_key", key)
	}
	name, version = key[:offset+i], key[offset+i+1:]
	version, _, _ = strings.Cut(version, "_")
	if name == "" || version == "" {
		return "", "", zerr.With(domain.ErrMalformedLock, "npm_key", key)
	}
	return name, version, nil
}

// resolveNpmPackages derives tarball URLs and cache paths for all npm lock
// entries. Pure computation, no network access. Duplicate keys that normalize
// to the same (name, version), i.e. peer-qualifier variants of one resolved
// version, contribute exactly one entry, first seen wins.
func resolveNpmPackages(entries map[string]domain.LockEntry, registry string) ([]domain.NpmPackage, error) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]struct{}, len(keys))
	packages := make([]domain.NpmPackage, 0, len(keys))
	for _, key := range keys {
		name, version, err := parseNpmKey(key)
		if err != nil {
			return nil, err
		}

		id := name + "@" + version
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		basename := name
		if i := strings.LastIndex(name, "/"); i >= 0 {
			basename = name[i+1:]
		}

		packages = append(packages, domain.NpmPackage{
			Name:       name,
			Version:    version,
			Integrity:  entries[key].Integrity,
			TarballURL: fmt.Sprintf("%s/%s/-/%s-%s.tgz", registry, name, basename, version),
			CachePath:  path.Join(npmCachePrefix, name, version),
		})
	}
	return packages, nil
}
