package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/kode4food/statebox/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.NoColor)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("STATEBOX_LOG_LEVEL", "debug")
		t.Setenv("STATEBOX_NO_COLOR", "true")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.NoColor)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("STATEBOX_NO_COLOR", "sometimes")

		_, err := config.Load()
		assert.ErrorContains(t, err, "parse env")
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := config.Config{LogLevel: "warn"}.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = config.Config{LogLevel: "loud"}.NewLogger()
	assert.ErrorContains(t, err, "log level")
}
