package resolver_test

import (
	"errors"
	"testing"

	"go.trai.ch/molt/internal/core/domain"
	"go.trai.ch/molt/internal/engine/resolver"
)

func TestParseNpmKey(t *testing.T) {
	cases := []struct {
		key     string
		name    string
		version string
	}{
		{"name@1.2.3", "name", "1.2.3"},
		{"@scope/name@1.2.3", "@scope/name", "1.2.3"},
		{"@scope/name@1.2.3_peer@4.5.6", "@scope/name", "1.2.3"},
		{"chalk@5.3.0_supports-color@9.4.0", "chalk", "5.3.0"},
	}
	for _, tc := range cases {
		name, version, err := resolver.ParseNpmKey(tc.key)
		if err != nil {
			t.Errorf("ParseNpmKey(%q) failed: %v", tc.key, err)
			continue
		}
		if name != tc.name || version != tc.version {
			t.Errorf("ParseNpmKey(%q) = (%q, %q), want (%q, %q)", tc.key, name, version, tc.name, tc.version)
		}
	}
}

func TestParseNpmKey_Malformed(t *testing.T) {
	for _, key := range []string{"", "name", "@scope/name", "@1.2.3", "name@"} {
		_, _, err := resolver.ParseNpmKey(key)
		if !errors.Is(err, domain.ErrMalformedLock) {
			t.Errorf("ParseNpmKey(%q): expected ErrMalformedLock, got %v", key, err)
		}
	}
}

func TestResolveNpmPackages(t *testing.T) {
	entries := map[string]domain.LockEntry{
		"@scope/tool@2.0.0": {Integrity: "sha512-scoped"},
		"chalk@5.3.0":       {Integrity: "sha512-chalk"},
	}

	packages, err := resolver.ResolveNpmPackages(entries, "https://registry.npmjs.org")
	if err != nil {
		t.Fatalf("ResolveNpmPackages failed: %v", err)
	}
	if len(packages) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(packages))
	}

	scoped := packages[0]
	if scoped.Name != "@scope/tool" {
		t.Fatalf("unexpected first package: %+v", scoped)
	}
	if want := "https://registry.npmjs.org/@scope/tool/-/tool-2.0.0.tgz"; scoped.TarballURL != want {
		t.Errorf("scoped tarball URL = %q, want %q", scoped.TarballURL, want)
	}
	if want := "npm/registry.npmjs.org/@scope/tool/2.0.0"; scoped.CachePath != want {
		t.Errorf("scoped cache path = %q, want %q", scoped.CachePath, want)
	}

	plain := packages[1]
	if want := "https://registry.npmjs.org/chalk/-/chalk-5.3.0.tgz"; plain.TarballURL != want {
		t.Errorf("tarball URL = %q, want %q", plain.TarballURL, want)
	}
	if plain.Integrity != "sha512-chalk" {
		t.Errorf("integrity not copied: %q", plain.Integrity)
	}
}

func TestResolveNpmPackages_DeduplicatesPeerVariants(t *testing.T) {
	entries := map[string]domain.LockEntry{
		"chalk@5.3.0":                      {Integrity: "sha512-first"},
		"chalk@5.3.0_supports-color@9.4.0": {Integrity: "sha512-variant"},
	}

	packages, err := resolver.ResolveNpmPackages(entries, "https://registry.npmjs.org")
	if err != nil {
		t.Fatalf("ResolveNpmPackages failed: %v", err)
	}
	if len(packages) != 1 {
		t.Fatalf("peer-qualifier variants must collapse to one package, got %d", len(packages))
	}
	// Keys iterate in sorted order, so the bare key is first seen.
	if packages[0].Integrity != "sha512-first" {
		t.Errorf("expected first-seen integrity, got %q", packages[0].Integrity)
	}
}

func TestResolveNpmPackages_CachePathIgnoresRegistry(t *testing.T) {
	entries := map[string]domain.LockEntry{"chalk@5.3.0": {Integrity: "x"}}

	packages, err := resolver.ResolveNpmPackages(entries, "https://npm.corp.example.com")
	if err != nil {
		t.Fatalf("ResolveNpmPackages failed: %v", err)
	}
	if want := "npm/registry.npmjs.org/chalk/5.3.0"; packages[0].CachePath != want {
		t.Errorf("cache path must use the fixed convention, got %q", packages[0].CachePath)
	}
	if want := "https://npm.corp.example.com/chalk/-/chalk-5.3.0.tgz"; packages[0].TarballURL != want {
		t.Errorf("tarball URL must use the configured registry, got %q", packages[0].TarballURL)
	}
}
