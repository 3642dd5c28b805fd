package config

import "github.com/bnema/hyprminimizer/internal/domain/entity"

// Default configuration constants
const (
	defaultLauncher           = "wofi --dmenu"
	defaultStackBaseDirectory = "/tmp"
	defaultPollInterval       = 2 // seconds

	defaultRegisterTimeout = 10  // seconds
	defaultRestartDelay    = 100 // milliseconds

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Launcher:            defaultLauncher,
		StackBaseDirectory:  defaultStackBaseDirectory,
		RestoreTo:           entity.RestoreTargetActive,
		PollIntervalSeconds: defaultPollInterval,
		Tray: TrayConfig{
			RegisterTimeoutSeconds: defaultRegisterTimeout,
			RestartDelayMs:         defaultRestartDelay,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
