package ports

import "go.trai.ch/molt/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given path. A missing file is not
	// an error: defaults apply.
	Load(path string) (*domain.Config, error)
}
