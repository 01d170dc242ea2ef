package spritetext

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for text rendering debug logging.
// Default is LevelInfo, which suppresses Debug messages such as glyph misses.
var logLevel = new(slog.LevelVar)

// logger is the package logger. Replace it with SetLogger.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose returns true if debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}
	logger = l
}

// Logger returns the package logger so backends log through the same sink.
func Logger() *slog.Logger {
	return logger
}
