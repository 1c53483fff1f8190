package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/molt/internal/core/domain"
)

func TestParseLockfile(t *testing.T) {
	data := []byte(`{
		"version": "5",
		"jsr": {
			"@std/fmt@1.0.8": {"integrity": "sha256-aaaa"}
		},
		"npm": {
			"chalk@5.3.0": {"integrity": "sha512-bbbb"}
		}
	}`)

	lock, err := domain.ParseLockfile(data)
	if err != nil {
		t.Fatalf("ParseLockfile failed: %v", err)
	}

	if lock.Version != "5" {
		t.Errorf("expected version 5, got %q", lock.Version)
	}
	if got := lock.JSR["@std/fmt@1.0.8"].Integrity; got != "sha256-aaaa" {
		t.Errorf("unexpected jsr integrity: %q", got)
	}
	if got := lock.NPM["chalk@5.3.0"].Integrity; got != "sha512-bbbb" {
		t.Errorf("unexpected npm integrity: %q", got)
	}
	if !lock.VersionSupported() {
		t.Error("version 5 must be supported")
	}
}

func TestParseLockfile_MissingSectionsNormalized(t *testing.T) {
	lock, err := domain.ParseLockfile([]byte(`{"version": "4"}`))
	if err != nil {
		t.Fatalf("ParseLockfile failed: %v", err)
	}
	if lock.JSR == nil || lock.NPM == nil {
		t.Error("absent jsr/npm sections must parse to empty maps, not nil")
	}
}

func TestParseLockfile_Malformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"invalid JSON", `{"version": `},
		{"missing version", `{"jsr": {}, "npm": {}}`},
		{"empty document", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.ParseLockfile([]byte(tc.data))
			if !errors.Is(err, domain.ErrMalformedLock) {
				t.Errorf("expected ErrMalformedLock, got %v", err)
			}
		})
	}
}

func TestLockfile_VersionSupported(t *testing.T) {
	for version, want := range map[string]bool{"4": true, "5": true, "3": false, "6": false} {
		lock := &domain.Lockfile{Version: version}
		if got := lock.VersionSupported(); got != want {
			t.Errorf("VersionSupported for %q = %v, want %v", version, got, want)
		}
	}
}
