// Package logger provides a small leveled logging interface for tally.
//
// Log lines go to stderr so they never interleave with the progress line
// that is redrawn in place on stdout.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Level is the minimum severity a leveled logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a config value ("debug", "info", "warn", "error") to a Level.
// Unknown or empty values fall back to LevelInfo.
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

// LevelFromEnv returns LevelDebug when TALLY_DEBUG is set, otherwise def.
func LevelFromEnv(def Level) Level {
	if os.Getenv("TALLY_DEBUG") != "" {
		return LevelDebug
	}
	return def
}

// leveledLogger writes prefixed lines to an io.Writer, dropping anything
// below its level.
type leveledLogger struct {
	prefix string
	level  Level
	out    *log.Logger
}

// New creates a logger writing to w at the given minimum level.
// The prefix is prepended to all log messages (e.g., "[check]" or "[config]").
func New(w io.Writer, prefix string, level Level) Logger {
	return &leveledLogger{
		prefix: prefix,
		level:  level,
		out:    log.New(w, "", log.LstdFlags),
	}
}

// NewEnvLogger creates a stderr logger at info level, lowered to debug
// when TALLY_DEBUG is set.
func NewEnvLogger(prefix string) Logger {
	return New(os.Stderr, prefix, LevelFromEnv(LevelInfo))
}

func (l *leveledLogger) logf(level Level, tag, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	var b strings.Builder
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteByte(' ')
	}
	b.WriteString(tag)
	b.WriteString(msg)
	l.out.Print(b.String())
}

func (l *leveledLogger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, "", format, args...)
}

func (l *leveledLogger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, "", format, args...)
}

func (l *leveledLogger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, "WARN: ", format, args...)
}

func (l *leveledLogger) Error(format string, args ...interface{}) {
	l.logf(LevelError, "ERROR: ", format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(format string, args ...interface{}) {}
func (noopLogger) Info(format string, args ...interface{})  {}
func (noopLogger) Warn(format string, args ...interface{})  {}
func (noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   Level
	Message string
}

// BufferLogger captures log messages for test assertions.
// Safe for use from the check runner's worker goroutines.
type BufferLogger struct {
	mu       sync.Mutex
	messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) add(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.add(LevelDebug, format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.add(LevelInfo, format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.add(LevelWarn, format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.add(LevelError, format, args...) }

// Messages returns a copy of the captured messages.
func (l *BufferLogger) Messages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = l.messages[:0]
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewEnvLogger("")
)

// Default returns the package-level logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
