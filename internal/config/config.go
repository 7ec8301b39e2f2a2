package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/asterlab/readprobe/internal/fixture"
)

// DefaultPath is where Load looks for a configuration file when the
// caller does not name one.
const DefaultPath = "readprobe.yml"

// Config represents the optional readprobe.yml configuration.
type Config struct {
	// OutputDir is the parent directory for new workspaces.
	// Empty means the platform temp directory.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Fixtures selects a subset of the fixture set by filename.
	// Empty means the full set.
	Fixtures []string `yaml:"fixtures,omitempty"`
}

// Load reads the configuration file at path. A missing file is not an
// error: defaults apply. A present file must parse and validate.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that every selected fixture name exists in the
// fixture set.
func (c *Config) Validate() error {
	known := make(map[string]bool)
	for _, name := range fixture.Names() {
		known[name] = true
	}

	for _, name := range c.Fixtures {
		if !known[name] {
			return fmt.Errorf("unknown fixture %q (known fixtures: %v)", name, fixture.Names())
		}
	}

	return nil
}
