package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Accepted values for LoggerSettings.LogLevel.
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Accepted values for LoggerSettings.LogType.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
	LogTypeJSON    = "json"
)

// DefaultServiceName tags log lines when no service_name is configured.
const DefaultServiceName = "trifasicko"

var (
	ErrLogFilePathMissing = errors.New("file path is required for file logger")
	ErrLogRotation        = errors.New("invalid log rotation settings")
)

// rotationBound is the inclusive range accepted for one lumberjack setting.
type rotationBound struct {
	field    string
	unit     string
	min, max int
}

var (
	maxSizeBound    = rotationBound{field: "max_size", unit: "MB", min: 1, max: 100}
	maxBackupsBound = rotationBound{field: "max_backups", unit: "files", min: 1, max: 10}
	maxAgeBound     = rotationBound{field: "max_age", unit: "days", min: 1, max: 365}
)

func (b rotationBound) check(v int) error {
	if v < b.min || v > b.max {
		return fmt.Errorf("%w: %s must be between %d and %d %s, got %d", ErrLogRotation, b.field, b.min, b.max, b.unit, v)
	}
	return nil
}

// LoggerSettings configures the process logger. File rotation fields are
// only read when LogType is "file".
type LoggerSettings struct {
	LogLevel    string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType     string `mapstructure:"log_type" validate:"required,oneof=console file json"`
	ServiceName string `mapstructure:"service_name" validate:"omitempty,max=64"`
	FilePath    string `mapstructure:"file_path"`
	MaxSize     int    `mapstructure:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
}

// Service returns the configured service name or DefaultServiceName.
func (s *LoggerSettings) Service() string {
	if s.ServiceName == "" {
		return DefaultServiceName
	}
	return s.ServiceName
}

// Validate checks the settings, including rotation bounds for file loggers.
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	if s.LogType != LogTypeFile {
		return nil
	}
	if s.FilePath == "" {
		return ErrLogFilePathMissing
	}
	return errors.Join(
		maxSizeBound.check(s.MaxSize),
		maxBackupsBound.check(s.MaxBackups),
		maxAgeBound.check(s.MaxAge),
	)
}
