package logger

import (
	"testing"

	"github.com/vibesbot/webhook-invoker/internal/config"
	"github.com/vibesbot/webhook-invoker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		level types.LogLevel
		want  zapcore.Level
	}{
		{types.LogLevelDebug, zapcore.DebugLevel},
		{types.LogLevelInfo, zapcore.InfoLevel},
		{types.LogLevelWarn, zapcore.WarnLevel},
		{types.LogLevelError, zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			cfg := &config.Configuration{Logging: config.LoggingConfig{Level: tt.level}}
			assert.Equal(t, tt.want, levelFor(cfg))
		})
	}
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(&config.Configuration{Logging: config.LoggingConfig{Level: types.LogLevelWarn}})
	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))
	assert.NotNil(t, L)
}
