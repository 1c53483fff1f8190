package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedLock is returned when the lock file is not valid JSON or is
	// missing required top-level fields.
	ErrMalformedLock = zerr.New("malformed lock file")

	// ErrInvalidInput is returned when a derived value violates a precondition,
	// such as a non-https URL or a checksum without the expected prefix.
	ErrInvalidInput = zerr.New("invalid input")

	// ErrFetchFailed is returned when a registry fetch returns a non-success
	// status or a transport error.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrMalformedManifest is returned when a persisted manifest cannot be
	// deserialized back into the data model.
	ErrMalformedManifest = zerr.New("malformed manifest")
)
