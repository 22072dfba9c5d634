package config

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

// InitLogger builds the zap logger at the given level. Called twice at
// startup: once with defaults so config loading can log, and again once the
// configured LOG_LEVEL is known.
func InitLogger(logLevelStr string) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()

	var level zapcore.Level
	switch strings.ToLower(logLevelStr) {
	case "debug":
		level = zap.DebugLevel
	case "info":
		level = zap.InfoLevel
	case "warn", "warning":
		level = zap.WarnLevel
	case "error":
		level = zap.ErrorLevel
	default:
		level = zap.InfoLevel
	}

	config.Level = zap.NewAtomicLevelAt(level)

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	// Kept for Cleanup to flush on shutdown.
	globalLogger = logger

	return logger, nil
}

// Cleanup flushes buffered log entries; deferred from main.
func Cleanup() {
	if globalLogger != nil {
		globalLogger.Sync()
	}
}
