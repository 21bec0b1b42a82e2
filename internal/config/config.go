// Package config defines the explicit runtime configuration for vmdecom.
//
// All tunables live on the Config struct and are passed into the
// orchestrator; there is no ambient state. Values come from the defaults
// below, optionally overridden by a YAML file and then by command-line
// flags.
package config

import (
	"fmt"
	"time"
)

// DefaultEndpoints is the fixed vCenter fleet searched when no override
// is given. The order matters: endpoints are connected and searched
// sequentially, first match wins.
var DefaultEndpoints = []string{
	"vcsa01.corp.internal",
	"vcsa02.corp.internal",
	"vcsa03.corp.internal",
	"vcsa04.corp.internal",
	"vcsa05.corp.internal",
	"vcsa06.corp.internal",
	"vcsa07.corp.internal",
	"vcsa08.corp.internal",
	"vcsa09.corp.internal",
	"vcsa10.corp.internal",
}

// Config holds all runtime settings for a decommission run.
type Config struct {
	// Endpoints is the ordered list of vCenter hosts to search.
	Endpoints []string `yaml:"endpoints"`

	// LogFile is the path of the append-only run log.
	// Empty disables the file sink.
	LogFile string `yaml:"log_file"`

	// Insecure skips TLS certificate verification on endpoint
	// connections. Common for lab vCenters with self-signed certs.
	Insecure bool `yaml:"insecure"`

	Timeouts Timeouts `yaml:"timeouts"`
}

// Timeouts bounds the power-off wait.
type Timeouts struct {
	// PollInterval is the fixed delay between power state checks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// ShutdownWindow is how long a guest shutdown may take before the
	// VM is forcibly stopped.
	ShutdownWindow time.Duration `yaml:"shutdown_window"`
}

// MaxPolls returns the number of power state checks that fit in the
// shutdown window. 12 with the defaults.
func (t Timeouts) MaxPolls() int {
	return int(t.ShutdownWindow / t.PollInterval)
}

// Default returns the built-in configuration: the fixed ten-endpoint
// fleet, a date-stamped log file in the working directory, and the
// 5s/60s power-off polling schedule.
func Default() *Config {
	endpoints := make([]string, len(DefaultEndpoints))
	copy(endpoints, DefaultEndpoints)

	return &Config{
		Endpoints: endpoints,
		LogFile:   fmt.Sprintf("vmdecom-%s.log", time.Now().Format("20060102")),
		Timeouts: Timeouts{
			PollInterval:   5 * time.Second,
			ShutdownWindow: 60 * time.Second,
		},
	}
}
