package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "ROVETABS_LOG_LEVEL"

// LogFileEnvVar redirects log output to a file. The interactive TUI owns
// stdout, so logs written there would corrupt the screen.
const LogFileEnvVar = "ROVETABS_LOG_FILE"

// parseLevel maps a level name onto a zap level. Unknown names fall back to
// info when logging was explicitly requested.
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize creates a new logger with the specified level writing to stdout.
// If level is empty, it checks ROVETABS_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeToFile(level, "")
}

// InitializeToFile is Initialize with output sent to path instead of stdout.
// An empty path falls back to ROVETABS_LOG_FILE, then stdout.
func InitializeToFile(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}

	encoding := "console"
	output := "stdout"
	if path != "" {
		output = path
		encoding = "json"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if path == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the ROVETABS_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so library use never prints
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
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

// LogSelectionChange logs a committed tab selection
func LogSelectionChange(index int, label string) {
	Info("Tab selected",
		zap.Int("index", index),
		zap.String("label", label),
	)
}

// LogKey logs a key press and the intent it mapped to, if any
func LogKey(key string, intent string, handled bool) {
	Debug("Key event",
		zap.String("key", key),
		zap.String("intent", intent),
		zap.Bool("handled", handled),
	)
}

// LogClick logs a pointer click and the tab it hit (-1 for none)
func LogClick(x, y, index int) {
	Debug("Mouse click",
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Int("tab", index),
	)
}

// LogFocusRing logs focus moving between regions of the screen
func LogFocusRing(from, to string) {
	Debug("Focus ring moved",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogLayoutLoaded logs a layout file that was read
func LogLayoutLoaded(path string, tabCount int, defaultIndex int) {
	Info("Layout loaded",
		zap.String("path", path),
		zap.Int("tabs", tabCount),
		zap.Int("default_index", defaultIndex),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
