package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels accepted in LoggerSettings.LogLevel. Critical is logged at error level.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted in LoggerSettings.LogType.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings selects the log level and sink. The rotation fields only apply to the file sink
// and are then mandatory: size in MB, backup count and age in days.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"required_if=LogType file,omitempty,min=1,max=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"required_if=LogType file,omitempty,min=1,max=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"required_if=LogType file,omitempty,min=1,max=365"`
}

// Validate checks the level, the sink and, for the file sink, the rotation bounds
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	return nil
}
