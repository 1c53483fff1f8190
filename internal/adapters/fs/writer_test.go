package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/molt/internal/adapters/fs"
)

func TestWriter_WriteCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "molt.manifest.json")

	w := fs.NewWriter()
	if err := w.Write(target, []byte("{}\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "{}\n" {
		t.Errorf("unexpected content: %q", got)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("expected default 0644 mode, got %v", info.Mode().Perm())
	}
}

func TestWriter_WritePreservesPermissions(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "molt.manifest.json")

	if err := os.WriteFile(target, []byte("old"), 0o600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	w := fs.NewWriter()
	if err := w.Write(target, []byte("new")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected preserved 0600 mode, got %v", info.Mode().Perm())
	}

	got, _ := os.ReadFile(target)
	if string(got) != "new" {
		t.Errorf("unexpected content: %q", got)
	}
}

func TestWriter_WriteCreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "nested", "dir", "manifest.json")

	w := fs.NewWriter()
	if err := w.Write(target, []byte("x")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := os.Stat(target); err != nil {
		t.Errorf("target not created: %v", err)
	}
}

func TestWriter_NoTempFileLeftBehind(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "manifest.json")

	w := fs.NewWriter()
	if err := w.Write(target, []byte("x")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the manifest in %v", names)
	}
}
