package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocadeck/vocadeck-api/internal/config"
)

func TestSetupValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN", "Info"} {
		logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, logger, "level %q", level)
	}
}

func TestSetupInvalidLevelFallsBack(t *testing.T) {
	logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	// Fallback is info: debug must be suppressed.
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "info"})
	require.NoError(t, err)
	assert.Same(t, logger, slog.Default())
}

func TestWithLoggerRoundTrip(t *testing.T) {
	t.Parallel()

	logger := slog.Default().With(slog.String("trace_id", "abc"))
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, logger, FromContextOrDefault(ctx, nil))
}

func TestFromContextMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Nil(t, FromContext(ctx))

	fallback := slog.Default().With(slog.String("component", "test"))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))
}
