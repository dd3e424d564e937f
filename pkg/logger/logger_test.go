package logger_test

import (
	"testing"

	"catalog/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := logger.New("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = logger.New("loud")
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	restore, err := logger.Init("debug")
	require.NoError(t, err)
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	restore()
	assert.False(t, zap.L().Core().Enabled(zapcore.DebugLevel))
}
