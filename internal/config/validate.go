package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values the orchestrator cannot
// work with.
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return errors.New("at least one endpoint is required")
	}
	for i, ep := range c.Endpoints {
		if strings.TrimSpace(ep) == "" {
			return fmt.Errorf("endpoint %d is blank", i+1)
		}
	}

	if c.Timeouts.PollInterval <= 0 {
		return errors.New("poll_interval must be positive")
	}
	if c.Timeouts.ShutdownWindow < c.Timeouts.PollInterval {
		return errors.New("shutdown_window must be at least one poll_interval")
	}

	return nil
}
