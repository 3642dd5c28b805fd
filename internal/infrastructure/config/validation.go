package config

import (
	"fmt"
	"strings"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLauncher(config)...)
	validationErrors = append(validationErrors, validateStack(config)...)
	validationErrors = append(validationErrors, validateTray(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLauncher(config *Config) []string {
	if config.Launcher == "" {
		return []string{"launcher cannot be empty"}
	}
	return nil
}

func validateStack(config *Config) []string {
	var validationErrors []string
	if config.StackBaseDirectory == "" {
		validationErrors = append(validationErrors, "stack_base_directory cannot be empty")
	}
	if _, err := entity.ParseRestoreTarget(string(config.RestoreTo)); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("restore_to must be %q or %q (got %q)",
			entity.RestoreTargetActive, entity.RestoreTargetOriginal, config.RestoreTo))
	}
	if config.PollIntervalSeconds < 1 {
		validationErrors = append(validationErrors, "poll_interval_seconds must be at least 1")
	}
	return validationErrors
}

func validateTray(config *Config) []string {
	var validationErrors []string
	if config.Tray.RegisterTimeoutSeconds < 0 {
		validationErrors = append(validationErrors, "tray.register_timeout_seconds must be non-negative")
	}
	if config.Tray.RestartDelayMs < 0 {
		validationErrors = append(validationErrors, "tray.restart_delay_ms must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}
