// Package logger is the API's structured logger: a small Field-based
// interface, a slog backend and request-scoped context helpers.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is the minimum severity written to the output.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel reads logging.level; unknown values mean info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is one key/value pair on a log entry.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err logs err's message under "error".
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger writes leveled entries. Handlers, services and middleware take it
// from the request context via Ctx rather than holding their own.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger that adds fields to every entry.
	With(fields ...Field) Logger
	// WithContext adds the request and user IDs stored in ctx.
	WithContext(ctx context.Context) Logger
}

// Config selects level, format ("json" or "text") and destination.
type Config struct {
	Level     Level
	Format    string
	AddSource bool
	Output    io.Writer
}

// ConfigFrom maps the logging section of the app config. Any format other
// than "text" is JSON.
func ConfigFrom(level, format string) Config {
	cfg := Config{Level: ParseLevel(level), Format: "json", Output: os.Stdout}
	if format == "text" {
		cfg.Format = "text"
	}
	return cfg
}

var (
	defaultMu     sync.Mutex
	defaultLogger Logger
)

// SetDefault replaces the process-wide logger returned by Default.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default is used wherever no logger was put in the context; until
// SetDefault is called it writes JSON at info level to stdout.
func Default() Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewSlogLogger(ConfigFrom("info", "json"))
	}
	return defaultLogger
}
