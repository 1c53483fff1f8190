package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/molt/internal/adapters/config"
	"go.trai.ch/molt/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "molt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_MissingFileYieldsDefaults(t *testing.T) {
	loader := config.NewLoader()

	cfg, err := loader.Load(filepath.Join(t.TempDir(), "molt.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_OverridesApply(t *testing.T) {
	path := writeConfig(t, `
lock: custom.lock
output: out/manifest.json
jsr_registry: https://jsr.mirror.example.com/
concurrency: 5
progress: true
`)

	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom.lock", cfg.LockPath)
	assert.Equal(t, "out/manifest.json", cfg.OutputPath)
	assert.Equal(t, "https://jsr.mirror.example.com", cfg.JSRRegistry, "trailing slash is trimmed")
	assert.Equal(t, domain.DefaultNpmRegistry, cfg.NpmRegistry, "unset fields keep defaults")
	assert.Equal(t, 5, cfg.Concurrency)
	assert.True(t, cfg.Progress)
}

func TestLoader_InvalidConcurrency(t *testing.T) {
	path := writeConfig(t, "concurrency: -1\n")

	loader := config.NewLoader()
	_, err := loader.Load(path)
	assert.Error(t, err)
}

func TestLoader_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "lock: [unclosed\n")

	loader := config.NewLoader()
	_, err := loader.Load(path)
	assert.Error(t, err)
}

func TestPath_Env(t *testing.T) {
	t.Setenv("MOLT_CONFIG", "/tmp/alt.yaml")
	assert.Equal(t, "/tmp/alt.yaml", config.Path())

	t.Setenv("MOLT_CONFIG", "")
	assert.Equal(t, domain.DefaultConfigPath, config.Path())
}
