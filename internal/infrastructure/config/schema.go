package config

import (
	"time"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

// Config represents the complete configuration for hyprminimizer.
type Config struct {
	// Launcher is the dmenu-style command the menu reads choices from (run with sh -c).
	Launcher string `mapstructure:"launcher" yaml:"launcher" toml:"launcher" json:"launcher" jsonschema:"default=wofi --dmenu"`
	// StackBaseDirectory holds the per-user stack file.
	StackBaseDirectory string `mapstructure:"stack_base_directory" yaml:"stack_base_directory" toml:"stack_base_directory" json:"stack_base_directory" jsonschema:"default=/tmp"`
	// RestoreTo selects where restore-last puts the window.
	RestoreTo entity.RestoreTarget `mapstructure:"restore_to" yaml:"restore_to" toml:"restore_to" json:"restore_to" jsonschema:"enum=active,enum=original,default=active"`
	// PollIntervalSeconds is how often a minimized window is checked for external close/restore.
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds" yaml:"poll_interval_seconds" toml:"poll_interval_seconds" json:"poll_interval_seconds" jsonschema:"minimum=1,default=2"`

	Tray    TrayConfig    `mapstructure:"tray" yaml:"tray" toml:"tray" json:"tray"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// TrayConfig tunes the StatusNotifierItem session.
type TrayConfig struct {
	// RegisterTimeoutSeconds bounds bus setup and watcher registration. 0 disables the bound.
	RegisterTimeoutSeconds int `mapstructure:"register_timeout_seconds" yaml:"register_timeout_seconds" toml:"register_timeout_seconds" json:"register_timeout_seconds" jsonschema:"minimum=0,default=10"`
	// RestartDelayMs is waited after a tray host restart before re-registering.
	RestartDelayMs int `mapstructure:"restart_delay_ms" yaml:"restart_delay_ms" toml:"restart_delay_ms" json:"restart_delay_ms" jsonschema:"minimum=0,default=100"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

func (c *Config) RegisterTimeout() time.Duration {
	return time.Duration(c.Tray.RegisterTimeoutSeconds) * time.Second
}

func (c *Config) RestartDelay() time.Duration {
	return time.Duration(c.Tray.RestartDelayMs) * time.Millisecond
}
