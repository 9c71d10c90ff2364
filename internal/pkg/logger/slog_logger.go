package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
)

// levelCritical sits above slog.LevelError and is used by Fatal and Panic.
const levelCritical = slog.Level(12)

// SlogLogger is a Logger backed by log/slog. Console output uses the text
// handler, file output writes JSON lines through a lumberjack rotator.
type SlogLogger struct {
	logger *slog.Logger
	exit   func(int)
}

// NewConsoleLogger writes text lines to stdout tagged with the service name.
func NewConsoleLogger(level, service string) Logger {
	return newSlogLogger(slog.NewTextHandler(os.Stdout, handlerOptions(level)), service)
}

// NewFileLogger writes JSON lines to settings.FilePath, rotating by size and age.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	return newSlogLogger(slog.NewJSONHandler(rotatingWriter(settings), handlerOptions(settings.LogLevel)), settings.Service())
}

func rotatingWriter(settings *config.LoggerSettings) io.Writer {
	return &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}
}

func newSlogLogger(h slog.Handler, service string) *SlogLogger {
	return &SlogLogger{
		logger: slog.New(h).With(slog.String("service", service)),
		exit:   os.Exit,
	}
}

func handlerOptions(level string) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == levelCritical {
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	}
}

func (l *SlogLogger) log(level slog.Level, args []interface{}) string {
	msg := formatArgs(args...)
	l.logger.Log(context.Background(), level, msg)
	return msg
}

// Debug logs at debug level.
func (l *SlogLogger) Debug(args ...interface{}) { l.log(slog.LevelDebug, args) }

// Info logs at info level.
func (l *SlogLogger) Info(args ...interface{}) { l.log(slog.LevelInfo, args) }

// Warn logs at warn level.
func (l *SlogLogger) Warn(args ...interface{}) { l.log(slog.LevelWarn, args) }

// Error logs at error level.
func (l *SlogLogger) Error(args ...interface{}) { l.log(slog.LevelError, args) }

// Fatal logs at critical level and exits with status 1.
func (l *SlogLogger) Fatal(args ...interface{}) {
	l.log(levelCritical, args)
	l.exit(1)
}

// Panic logs at critical level and panics with the message.
func (l *SlogLogger) Panic(args ...interface{}) {
	panic(l.log(levelCritical, args))
}
