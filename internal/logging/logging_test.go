package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsInvalidEnvironment(t *testing.T) {
	_, _, err := New(Config{Environment: Environment("banana")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestNewAppliesEnvironmentDefaultLevel(t *testing.T) {
	_, level, err := New(Config{Environment: EnvironmentDevelopment})
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	_, level, err = New(Config{})
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestNewAppliesCustomLevel(t *testing.T) {
	logger, level, err := New(Config{Environment: EnvironmentProduction, Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, level.Level())
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewRejectsInvalidCustomLevel(t *testing.T) {
	_, _, err := New(Config{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}
