package domain

import (
	"encoding/json"
	"sort"

	"go.trai.ch/zerr"
)

// Struct fields below are declared in the order of their JSON tags so the
// serialized manifest has sorted object keys throughout.

// RegistryFile is one remote file belonging to a resolved JSR package.
// Identity is the URL; values are immutable once constructed.
type RegistryFile struct {
	CachePath string `json:"cache_path"`
	MediaType string `json:"media_type"`
	SHA256    string `json:"sha256"`
	URL       string `json:"url"`
}

// JSRPackage is a resolved registry package: every remote file it consists of,
// with digests and cache paths, plus the two registry index documents.
type JSRPackage struct {
	Files     []RegistryFile `json:"files"`
	Integrity string         `json:"integrity"`
	Name      string         `json:"name"`
	Version   string         `json:"version"`
}

// NpmPackage is a resolved tarball package. The cache path follows the
// runtime's fixed npm layout and does not depend on the digest.
type NpmPackage struct {
	CachePath  string `json:"cache_path"`
	Integrity  string `json:"integrity"`
	Name       string `json:"name"`
	TarballURL string `json:"tarball_url"`
	Version    string `json:"version"`
}

// Manifest is the flat, content-addressed description of everything a
// deterministic prefetch step must place into the module cache. Its content
// is a pure function of the lock file and registry state, so it can be
// committed to version control with stable diffs.
type Manifest struct {
	JSRPackages []JSRPackage `json:"jsr_packages"`
	LockVersion string       `json:"lock_version"`
	NpmPackages []NpmPackage `json:"npm_packages"`
}

// Sort orders both package lists by (name, version). Resolution runs
// concurrently, so sorting is what keeps completion order out of the output.
func (m *Manifest) Sort() {
	sort.Slice(m.JSRPackages, func(i, j int) bool {
		a, b := m.JSRPackages[i], m.JSRPackages[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Version < b.Version
	})
	sort.Slice(m.NpmPackages, func(i, j int) bool {
		a, b := m.NpmPackages[i], m.NpmPackages[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Version < b.Version
	})
}

// Serialize renders the manifest as canonical JSON: sorted keys, 2-space
// indentation, trailing newline. Equal manifests serialize to identical bytes.
func (m *Manifest) Serialize() ([]byte, error) {
	m.Sort()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to serialize manifest")
	}
	return append(data, '\n'), nil
}

// ParseManifest is the inverse of Serialize. Unknown fields are tolerated;
// a missing lock_version fails with ErrMalformedManifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(ErrMalformedManifest, "cause", err.Error())
	}
	if m.LockVersion == "" {
		return nil, zerr.With(ErrMalformedManifest, "reason", "missing lock_version field")
	}
	if m.JSRPackages == nil {
		m.JSRPackages = []JSRPackage{}
	}
	if m.NpmPackages == nil {
		m.NpmPackages = []NpmPackage{}
	}
	return &m, nil
}
