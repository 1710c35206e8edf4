package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
)

// ErrNotInitialized is returned by GetLogger before a successful InitLogger.
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

var (
	mu       sync.RWMutex
	instance Logger
)

// InitLogger builds the process logger from settings. The first successful call wins and later
// calls are no-ops; a failed call leaves the logger unset so it can be retried with valid settings.
func InitLogger(settings *config.LoggerSettings) error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return nil
	}

	l, err := newLogger(settings)
	if err != nil {
		return err
	}
	instance = l
	return nil
}

// GetLogger returns the process logger.
func GetLogger() (Logger, error) {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return nil, ErrNotInitialized
	}
	return instance, nil
}

func newLogger(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, errors.New("logger settings are nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	if settings.LogType == config.LogTypeFile {
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	}
	return NewConsoleLogger(settings.LogLevel), nil
}

// parseLevel maps a configured level onto slog. Critical has no slog counterpart and shares Error.
func parseLevel(level string) slog.Level {
	levels := map[string]slog.Level{
		config.LogLevelDebug:    slog.LevelDebug,
		config.LogLevelInfo:     slog.LevelInfo,
		config.LogLevelWarning:  slog.LevelWarn,
		config.LogLevelError:    slog.LevelError,
		config.LogLevelCritical: slog.LevelError,
	}
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

// formatArgs joins args the way fmt.Sprint does.
func formatArgs(args ...interface{}) string {
	return fmt.Sprint(args...)
}
