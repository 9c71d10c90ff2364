package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// SetupTestLogger returns the process logger, initializing it on first use.
// Tests in one binary share the instance, so the settings only matter once.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	require.NoError(t, logger.InitLogger(&config.LoggerSettings{
		LogLevel:    config.LogLevelWarning,
		LogType:     config.LogTypeConsole,
		ServiceName: "trifasicko-test",
	}))
	log, err := logger.GetLogger()
	require.NoError(t, err)
	return log
}
