package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()

	assert.Len(t, cfg.Endpoints, 10)
	assert.Equal(t, "vcsa01.corp.internal", cfg.Endpoints[0])
	assert.Equal(t, "vcsa10.corp.internal", cfg.Endpoints[9])
	assert.Equal(t, 5*time.Second, cfg.Timeouts.PollInterval)
	assert.Equal(t, 60*time.Second, cfg.Timeouts.ShutdownWindow)
	assert.False(t, cfg.Insecure)
	assert.Regexp(t, `^vmdecom-\d{8}\.log$`, cfg.LogFile)
}

func TestDefault_CopiesEndpoints(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Endpoints[0] = "mutated"

	assert.Equal(t, "vcsa01.corp.internal", DefaultEndpoints[0])
}

func TestMaxPolls(t *testing.T) {
	t.Parallel()
	cfg := Default()
	assert.Equal(t, 12, cfg.Timeouts.MaxPolls())

	custom := Timeouts{PollInterval: 2 * time.Second, ShutdownWindow: 30 * time.Second}
	assert.Equal(t, 15, custom.MaxPolls())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Config) {},
		},
		{
			name:    "no endpoints",
			mutate:  func(c *Config) { c.Endpoints = nil },
			wantErr: "at least one endpoint",
		},
		{
			name:    "blank endpoint",
			mutate:  func(c *Config) { c.Endpoints = []string{"vcsa01", "  "} },
			wantErr: "endpoint 2 is blank",
		},
		{
			name:    "zero poll interval",
			mutate:  func(c *Config) { c.Timeouts.PollInterval = 0 },
			wantErr: "poll_interval must be positive",
		},
		{
			name:    "window shorter than interval",
			mutate:  func(c *Config) { c.Timeouts.ShutdownWindow = time.Second },
			wantErr: "shutdown_window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
