// Package config provides the configuration loader for molt.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/molt/internal/core/domain"
	"go.trai.ch/molt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads molt.yaml from the given path and merges it over the defaults.
// A missing file is not an error; the defaults apply as-is.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Moltfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Lock != "" {
		cfg.LockPath = file.Lock
	}
	if file.Output != "" {
		cfg.OutputPath = file.Output
	}
	if file.JSRRegistry != "" {
		cfg.JSRRegistry = strings.TrimSuffix(file.JSRRegistry, "/")
	}
	if file.NpmRegistry != "" {
		cfg.NpmRegistry = strings.TrimSuffix(file.NpmRegistry, "/")
	}
	if file.Concurrency != 0 {
		if file.Concurrency < 1 {
			return nil, zerr.With(zerr.New("concurrency must be at least 1"), "concurrency", file.Concurrency)
		}
		cfg.Concurrency = file.Concurrency
	}
	cfg.Progress = file.Progress

	return cfg, nil
}

// Path returns the configuration file path, honoring the MOLT_CONFIG
// environment variable.
func Path() string {
	if p := os.Getenv("MOLT_CONFIG"); p != "" {
		return p
	}
	return domain.DefaultConfigPath
}
