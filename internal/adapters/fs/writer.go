// Package fs implements file-system persistence for the manifest.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/molt/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultFileMode = os.FileMode(0o644)
	dirMode         = os.FileMode(0o750)
)

var _ ports.ManifestWriter = (*Writer)(nil)

// Writer persists manifest bytes atomically: the data lands in a temp file in
// the target directory and replaces the destination with a rename, so a crash
// mid-write never leaves a truncated manifest in place.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write persists data to path. Permission bits of a pre-existing file are
// preserved; new files get 0644.
func (w *Writer) Write(path string, data []byte) error {
	path = filepath.Clean(path)

	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return zerr.Wrap(err, "failed to create manifest directory")
	}

	tmpFile, err := os.CreateTemp(dir, ".manifest-*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmpFile.Name()

	// Clean up the temp file on any failure before the rename.
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write manifest")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close manifest temp file")
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		return zerr.Wrap(err, "failed to set manifest permissions")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to replace manifest")
	}

	return nil
}
