package logger

import (
	"testing"

	"gallery-app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	lg, err := New(config.EnvProd, false)
	require.NoError(t, err)
	assert.False(t, lg.Core().Enabled(zapcore.DebugLevel))

	lg, err = New(config.EnvLocal, false)
	require.NoError(t, err)
	assert.True(t, lg.Core().Enabled(zapcore.DebugLevel))

	lg, err = New(config.EnvProd, true)
	require.NoError(t, err)
	assert.True(t, lg.Core().Enabled(zapcore.DebugLevel))
}
