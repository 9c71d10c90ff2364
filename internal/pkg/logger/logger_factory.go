package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// builders maps each configured log type to its constructor.
var builders = map[string]func(*config.LoggerSettings) (Logger, error){
	config.LogTypeConsole: func(s *config.LoggerSettings) (Logger, error) {
		return NewConsoleLogger(s.LogLevel, s.Service()), nil
	},
	config.LogTypeFile: func(s *config.LoggerSettings) (Logger, error) {
		return NewFileLogger(s), nil
	},
	config.LogTypeJSON: func(s *config.LoggerSettings) (Logger, error) {
		return NewZapLogger(s.LogLevel, s.Service())
	},
}

// InitLogger builds the process-wide logger once. Later calls return the
// first call's error and leave the instance untouched.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	build, ok := builders[settings.LogType]
	if !ok {
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
	return build(settings)
}

func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	case config.LogLevelCritical:
		return levelCritical
	default:
		return slog.LevelInfo
	}
}

func formatArgs(args ...interface{}) string {
	return fmt.Sprint(args...)
}
