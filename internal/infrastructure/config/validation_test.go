package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "original target", mutate: func(c *Config) { c.RestoreTo = entity.RestoreTargetOriginal }},
		{name: "zero register timeout", mutate: func(c *Config) { c.Tray.RegisterTimeoutSeconds = 0 }},
		{name: "empty launcher", mutate: func(c *Config) { c.Launcher = "" }, wantErr: "launcher"},
		{name: "empty stack dir", mutate: func(c *Config) { c.StackBaseDirectory = "" }, wantErr: "stack_base_directory"},
		{name: "bad target", mutate: func(c *Config) { c.RestoreTo = "nowhere" }, wantErr: "restore_to"},
		{name: "zero poll", mutate: func(c *Config) { c.PollIntervalSeconds = 0 }, wantErr: "poll_interval_seconds"},
		{name: "negative timeout", mutate: func(c *Config) { c.Tray.RegisterTimeoutSeconds = -1 }, wantErr: "tray.register_timeout_seconds"},
		{name: "negative delay", mutate: func(c *Config) { c.Tray.RestartDelayMs = -5 }, wantErr: "tray.restart_delay_ms"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Launcher = ""
	cfg.PollIntervalSeconds = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed:\n  - launcher")
	assert.Contains(t, err.Error(), "\n  - poll_interval_seconds")
}
