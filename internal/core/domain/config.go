package domain

// Defaults applied by the configuration loader when molt.yaml is absent or
// leaves fields unset.
const (
	DefaultLockPath    = "deno.lock"
	DefaultOutputPath  = "molt.manifest.json"
	DefaultJSRRegistry = "https://jsr.io"
	DefaultNpmRegistry = "https://registry.npmjs.org"
	DefaultConcurrency = 20
	DefaultConfigPath  = "molt.yaml"
)

// Config holds the resolved runtime configuration. Concurrency is explicit
// configuration rather than a package-level constant so the engine carries no
// hidden process-wide state.
type Config struct {
	// LockPath is the lock file read at the start of a run.
	LockPath string

	// OutputPath is where the serialized manifest is written.
	OutputPath string

	// JSRRegistry is the base URL of the JSR registry, without trailing slash.
	JSRRegistry string

	// NpmRegistry is the base URL of the npm registry, without trailing slash.
	NpmRegistry string

	// Concurrency caps the number of packages resolved in flight at once.
	Concurrency int

	// Progress enables per-package progress recording.
	Progress bool
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() *Config {
	return &Config{
		LockPath:    DefaultLockPath,
		OutputPath:  DefaultOutputPath,
		JSRRegistry: DefaultJSRRegistry,
		NpmRegistry: DefaultNpmRegistry,
		Concurrency: DefaultConcurrency,
	}
}
