package config

// Moltfile represents the structure of the molt.yaml configuration file.
// Every field is optional; unset fields fall back to defaults.
type Moltfile struct {
	Lock        string `yaml:"lock"`
	Output      string `yaml:"output"`
	JSRRegistry string `yaml:"jsr_registry"`
	NpmRegistry string `yaml:"npm_registry"`
	Concurrency int    `yaml:"concurrency"`
	Progress    bool   `yaml:"progress"`
}
