package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile returns the default configuration overlaid with the YAML file
// at path. An empty path returns the defaults unchanged. The result is
// validated before being returned.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
