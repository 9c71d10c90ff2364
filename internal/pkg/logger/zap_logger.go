package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
)

// ZapLogger is an implementation of Logger emitting JSON lines to stdout,
// suited to container log collectors.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger builds a production zap logger tagged with the service and host name.
func NewZapLogger(level, serviceName string) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	base, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	if serviceName != "" {
		base = base.With(zap.String("service_name", serviceName))
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		base = base.With(zap.String("hostname", hostname))
	}

	return &ZapLogger{logger: base.Sugar()}, nil
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case config.LogLevelDebug:
		return zapcore.DebugLevel
	case config.LogLevelWarning:
		return zapcore.WarnLevel
	case config.LogLevelError:
		return zapcore.ErrorLevel
	case config.LogLevelCritical:
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// Debug logs a debug message.
func (l *ZapLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message.
func (l *ZapLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *ZapLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *ZapLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *ZapLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(formatArgs(args...))
}

// Panic logs a panic message and panics.
func (l *ZapLogger) Panic(args ...interface{}) {
	l.logger.Panic(formatArgs(args...))
}
