// Package log provides structured logging for the aurora key tool.
//
// Everything goes to stderr so command output on stdout stays clean. The
// default level is warn: a successful invocation prints nothing.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers for different parts of the tool.
var (
	Keys  zerolog.Logger
	RPC   zerolog.Logger
	Input zerolog.Logger
)

func init() {
	Logger = NewConsoleLogger(os.Stderr, "warn")
	initComponentLoggers()
}

// Init initializes the logger with the given level.
func Init(level string) {
	Logger = NewConsoleLogger(os.Stderr, level)
	initComponentLoggers()
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    false,
	}

	return zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// parseLevel converts a string level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func initComponentLoggers() {
	Keys = Logger.With().Str("component", "keys").Logger()
	RPC = Logger.With().Str("component", "rpc").Logger()
	Input = Logger.With().Str("component", "input").Logger()
}
