package domain

import (
	"encoding/json"

	"go.trai.ch/zerr"
)

// SupportedLockVersions lists the lock file format versions this tool was
// written against. Other versions are processed with a warning rather than
// rejected, since the fields we consume have been stable across versions.
var SupportedLockVersions = []string{"4", "5"}

// LockEntry is a single pinned dependency in the lock file. The integrity
// string is opaque to us; downstream consumers use it for verification.
type LockEntry struct {
	Integrity string `json:"integrity"`
}

// Lockfile is the parsed form of a Deno lock file, reduced to the fields
// resolution needs: JSR entries keyed by "<scope>/<name>@<version>" and npm
// entries keyed by "<name>@<version>[_<peerqualifier>]".
type Lockfile struct {
	Version string               `json:"version"`
	JSR     map[string]LockEntry `json:"jsr"`
	NPM     map[string]LockEntry `json:"npm"`
}

// VersionSupported reports whether the lock file declares a version this tool
// was written against.
func (l *Lockfile) VersionSupported() bool {
	for _, v := range SupportedLockVersions {
		if l.Version == v {
			return true
		}
	}
	return false
}

// ParseLockfile decodes lock file bytes into a Lockfile. It fails with
// ErrMalformedLock on invalid JSON or a missing version field. Absent jsr/npm
// sections are normalized to empty maps so callers never see nil.
func ParseLockfile(data []byte) (*Lockfile, error) {
	var lock Lockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(ErrMalformedLock, "cause", err.Error())
	}
	if lock.Version == "" {
		return nil, zerr.With(ErrMalformedLock, "reason", "missing version field")
	}
	if lock.JSR == nil {
		lock.JSR = map[string]LockEntry{}
	}
	if lock.NPM == nil {
		lock.NPM = map[string]LockEntry{}
	}
	return &lock, nil
}
