package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/DannyWilsonCodeShop/classcast-platform/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "stdout")

	logger, err := New()
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.False(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     appConfig.LoggerConfig
		enabled zapcore.Level
	}{
		{
			name:    "production json info",
			cfg:     appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"},
			enabled: zapcore.InfoLevel,
		},
		{
			name:    "development console debug",
			cfg:     appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stderr"},
			enabled: zapcore.DebugLevel,
		},
		{
			name:    "unknown level falls back to info",
			cfg:     appConfig.LoggerConfig{Level: "loud", Format: "json", Output: "stdout"},
			enabled: zapcore.InfoLevel,
		},
		{
			name:    "file output falls back to stdout",
			cfg:     appConfig.LoggerConfig{Level: "error", Format: "json", Output: "/var/log/app.log"},
			enabled: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithConfig(tt.cfg)
			require.NoError(t, err)
			assert.True(t, logger.Desugar().Core().Enabled(tt.enabled))
		})
	}
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "stdout", outputPath("stdout"))
	assert.Equal(t, "stderr", outputPath("stderr"))
	assert.Equal(t, "stdout", outputPath("app.log"))
	assert.Equal(t, "stdout", outputPath(""))
}
