//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileLoggerSettings(mutate func(*LoggerSettings)) *LoggerSettings {
	s := &LoggerSettings{
		LogLevel:   LogLevelDebug,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/crypto-toolbox.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	if mutate != nil {
		mutate(s)
	}
	return s
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{"console", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}, false},
		{"console at critical", &LoggerSettings{LogLevel: LogLevelCritical, LogType: LogTypeConsole}, false},
		{"file with rotation", fileLoggerSettings(nil), false},
		{"missing level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"unknown level", &LoggerSettings{LogLevel: "trace", LogType: LogTypeConsole}, true},
		{"missing type", &LoggerSettings{LogLevel: LogLevelInfo}, true},
		{"unknown type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"file without path", fileLoggerSettings(func(s *LoggerSettings) { s.FilePath = "" }), true},
		{"file without rotation", fileLoggerSettings(func(s *LoggerSettings) { s.MaxSize, s.MaxBackups, s.MaxAge = 0, 0, 0 }), true},
		{"file max size too large", fileLoggerSettings(func(s *LoggerSettings) { s.MaxSize = 101 }), true},
		{"file too many backups", fileLoggerSettings(func(s *LoggerSettings) { s.MaxBackups = 11 }), true},
		{"file max age too long", fileLoggerSettings(func(s *LoggerSettings) { s.MaxAge = 366 }), true},
		{"console ignores empty rotation", &LoggerSettings{LogLevel: LogLevelWarning, LogType: LogTypeConsole, FilePath: "unused"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}
