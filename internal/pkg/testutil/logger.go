// Package testutil holds helpers shared by unit tests across packages.
package testutil

import (
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns the process logger, initializing a console logger at warning level
// when none exists so processor and service logs stay out of test output.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	if log, err := logger.GetLogger(); err == nil {
		return log
	}

	require.NoError(t, logger.InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelWarning,
		LogType:  config.LogTypeConsole,
	}))

	log, err := logger.GetLogger()
	require.NoError(t, err)
	return log
}
