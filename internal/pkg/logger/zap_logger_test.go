//go:build unit
// +build unit

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
)

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(config.LogLevelInfo, "trifasicko-rest-api")
	require.NoError(t, err)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Debug("hidden")
		logger.Info("news aggregation finished")
		logger.Warn("price indicator slow")
		logger.Error("security catalog unavailable")
	})
}

func TestZapLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{config.LogLevelDebug, zapcore.DebugLevel},
		{config.LogLevelInfo, zapcore.InfoLevel},
		{config.LogLevelWarning, zapcore.WarnLevel},
		{config.LogLevelError, zapcore.ErrorLevel},
		{config.LogLevelCritical, zapcore.DPanicLevel},
		{"unknown", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, zapLevel(tt.level))
		})
	}
}
