// Package logging configures the application logger. Logs are JSON,
// written to stdout and, when a path is configured, mirrored to an
// append-only file so crashes on-device can be diagnosed after the fact.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logPath string
	logFile *os.File

	setupOnce sync.Once
	out       io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetPath sets the full path for the log file, including filename.
// Parent directories are created. Call before the first Logger() call.
func SetPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		out = os.Stdout
		if logPath == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Console-only when the file cannot be opened.
			return
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, logFile)
	})
}

// Logger returns the process-wide structured logger.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		setup()
		logger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

// SetLevel sets the minimum log level.
func SetLevel(level slog.Level) {
	Logger()
	levelVar.Set(level)
}

// SetRawLevel parses and sets the log level from a string
// ("debug", "info", "warn", "error"). Unknown values fall back to info.
func SetRawLevel(raw string) {
	var level slog.Level
	switch strings.ToLower(raw) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	SetLevel(level)
}

// Close flushes and closes the log file, if one was opened.
func Close() {
	if logFile != nil {
		logFile.Close()
	}
}
