package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hyprminimizer/internal/domain/entity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "wofi --dmenu", cfg.Launcher)
	assert.Equal(t, "/tmp", cfg.StackBaseDirectory)
	assert.Equal(t, entity.RestoreTargetActive, cfg.RestoreTo)
	assert.Equal(t, 2*time.Second, cfg.PollInterval())
	assert.Equal(t, 10*time.Second, cfg.RegisterTimeout())
	assert.Equal(t, 100*time.Millisecond, cfg.RestartDelay())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	require.NoError(t, validateConfig(cfg))
}
