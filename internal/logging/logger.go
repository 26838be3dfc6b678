package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar controls the file log verbosity. When unset or empty the
// file sink logs at info level.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "MIRRORMENU_LOG_LEVEL"

// InitializeFile enables logging to the given file path. The file is trimmed
// first when it exceeds maxKB kilobytes (see Rotate). Logging stays disabled
// when path is empty.
func InitializeFile(path string, maxKB int, trimPercent int) error {
	if path == "" {
		logger = zap.NewNop()
		return nil
	}

	if err := Rotate(path, maxKB, trimPercent); err != nil {
		// A failed trim is not worth refusing to log over.
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(f)),
		levelFromEnv(),
	)
	logger = zap.New(core)
	return nil
}

func levelFromEnv() zapcore.Level {
	switch os.Getenv(LogLevelEnvVar) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until explicitly initialized; the menus own the terminal.
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogLaunch logs a mirroring process launch with its full argument list.
func LogLaunch(preset string, serial string, args []string) {
	Info("Launching mirroring process",
		zap.String("preset", preset),
		zap.String("serial", serial),
		zap.Strings("args", args),
	)
}

// LogExit logs the exit disposition of a finished mirroring process.
func LogExit(code int, meaning string) {
	if code == 0 {
		Info("Mirroring process exited", zap.Int("code", code), zap.String("meaning", meaning))
		return
	}
	Warn("Mirroring process exited", zap.Int("code", code), zap.String("meaning", meaning))
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
