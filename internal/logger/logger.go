// Package logger writes application logs to a file so they never interfere
// with the terminal owned by the UI.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	logger   = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar}))
	logFile  *os.File
)

// Init opens path for appending and routes all log output there.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	logger.Info("Logger initialized", "path", path)
	return nil
}

// SetOutput routes log output to w. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// SetDebug enables debug level logging.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
		return
	}
	levelVar.Set(slog.LevelInfo)
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar}))
}

func logWithLevel(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !logger.Enabled(context.Background(), level) {
		return
	}
	logger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message.
func Debug(format string, args ...any) {
	logWithLevel(slog.LevelDebug, format, args...)
}

// Info writes an informational message.
func Info(format string, args ...any) {
	logWithLevel(slog.LevelInfo, format, args...)
}

// Warn writes a warning.
func Warn(format string, args ...any) {
	logWithLevel(slog.LevelWarn, format, args...)
}

// Error writes an error message.
func Error(format string, args ...any) {
	logWithLevel(slog.LevelError, format, args...)
}
