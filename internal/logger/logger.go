// Package logger writes the client's diagnostics to a log file so they never
// interleave with the terminal UI. The server uses NewServerLogger instead.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	slogLogger   *slog.Logger
	levelVar     = new(slog.LevelVar)
	logFile      *os.File
	mu           sync.Mutex
	once         sync.Once
	initDone     bool
	currentLevel LogLevel = LevelInfo
)

// DefaultLogPath is where the TUI writes unless Init picks another file.
const DefaultLogPath = "/tmp/ragchat-debug.log"

// SetLevel sets the minimum log level to output
func SetLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	levelVar.Set(level.toSlogLevel())
}

// SetDebug enables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelInfo)
	}
}

// Init opens path for appending and routes all subsequent log calls to it.
// Calling Init again before Reset is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	return openLocked(path)
}

func openLocked(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	levelVar.Set(currentLevel.toSlogLevel())
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if initDone {
		return
	}
	once.Do(func() {
		if err := openLocked(DefaultLogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	})
}

func logWithLevel(level slog.Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil || !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message to the log file (only if level is LevelDebug)
func Debug(format string, args ...interface{}) {
	logWithLevel(slog.LevelDebug, format, args...)
}

// Info writes an info message to the log file
func Info(format string, args ...interface{}) {
	logWithLevel(slog.LevelInfo, format, args...)
}

// Warn writes a warning message to the log file
func Warn(format string, args ...interface{}) {
	logWithLevel(slog.LevelWarn, format, args...)
}

// Error writes an error message to the log file
func Error(format string, args ...interface{}) {
	logWithLevel(slog.LevelError, format, args...)
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset resets the logger state, allowing reinitialization.
// This is primarily for testing purposes.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	once = sync.Once{}
	slogLogger = nil
	currentLevel = LevelInfo
	levelVar = new(slog.LevelVar)
}

func with(attrs ...any) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return slog.Default()
	}
	return slogLogger.With(attrs...)
}

// WithComponent returns a structured logger tagged with the component name.
//
// Example:
//
//	log := logger.WithComponent("tabs")
//	log.Info("tab opened", "conversationID", id)
func WithComponent(component string) *slog.Logger {
	return with(slog.String("component", component))
}

// WithConversation returns a structured logger scoped to one conversation.
func WithConversation(id string) *slog.Logger {
	return with(slog.String("conversationID", id))
}

// NewServerLogger builds the JSON logger used by the collaborator server.
func NewServerLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// InitServer routes all package logging, including WithComponent loggers,
// to a JSON logger on w. It replaces any earlier Init.
func InitServer(w io.Writer, debug bool) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = NewServerLogger(w, debug)
	initDone = true
	return slogLogger
}
