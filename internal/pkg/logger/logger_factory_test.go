//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings func(t *testing.T) *config.LoggerSettings
		wantErr  bool
	}{
		{"console", func(*testing.T) *config.LoggerSettings {
			return &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}
		}, false},
		{"rotated file", func(t *testing.T) *config.LoggerSettings {
			return &config.LoggerSettings{
				LogLevel:   config.LogLevelDebug,
				LogType:    config.LogTypeFile,
				FilePath:   filepath.Join(t.TempDir(), "crypto-toolbox.log"),
				MaxSize:    1,
				MaxBackups: 1,
				MaxAge:     1,
			}
		}, false},
		{"unknown level", func(*testing.T) *config.LoggerSettings {
			return &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}
		}, true},
		{"unknown sink", func(*testing.T) *config.LoggerSettings {
			return &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}
		}, true},
		{"file without rotation", func(t *testing.T) *config.LoggerSettings {
			return &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeFile,
				FilePath: filepath.Join(t.TempDir(), "crypto-toolbox.log"),
			}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)
			settings := tt.settings(t)

			err := InitLogger(settings)
			log, getErr := GetLogger()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Error(t, getErr)
				assert.Nil(t, log)
				return
			}

			require.NoError(t, err)
			require.NoError(t, getErr)
			require.NotNil(t, log)

			if settings.LogType == config.LogTypeFile {
				log.Info("key generated")
				assert.FileExists(t, settings.FilePath)
			}
		})
	}
}

func TestInitLogger_NilSettings(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	err := InitLogger(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil")
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	logger, err := GetLogger()
	assert.Error(t, err)
	assert.Nil(t, logger)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitLogger_Singleton(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	err := InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)

	logger1, err := GetLogger()
	require.NoError(t, err)

	logger2, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, logger1, logger2)
}

func TestInitLogger_Idempotent(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	err1 := InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err1)

	err2 := InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	})
	assert.NoError(t, err2)

	logger1, _ := GetLogger()
	logger2, _ := GetLogger()
	assert.Same(t, logger1, logger2)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			result := parseLevel(tt.level)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []interface{}
		expected string
	}{
		{"empty", []interface{}{}, ""},
		{"single", []interface{}{"test"}, "test"},
		{"multiple", []interface{}{"hello", "world"}, "helloworld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatArgs(tt.args...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestInitLogger_RetryAfterInvalidSettings(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	err := InitLogger(&config.LoggerSettings{LogLevel: "loud", LogType: config.LogTypeConsole})
	require.Error(t, err)

	_, err = GetLogger()
	require.ErrorIs(t, err, ErrNotInitialized)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelWarning, LogType: config.LogTypeConsole}))
	log, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)
}
