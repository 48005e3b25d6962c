package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/footprint-tools/parsecmd/internal/domain"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel maps a configuration value to a Level, ignoring case and
// surrounding space. Anything unrecognized means LevelWarn.
func ParseLevel(s string) Level {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return LevelWarn
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i)
		}
	}
	return LevelWarn
}

const timeLayout = "2006-01-02 15:04:05"

// Logger appends "[time] LEVEL: message" lines to a writer.
// It is safe for concurrent use; a nil *Logger discards everything.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	file     io.Closer
	minLevel Level
	closed   bool
	now      func() time.Time
}

// New opens (or creates) the log file at path for appending.
// A missing directory is created with 0700; the file is kept at 0600.
func New(path string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if err := f.Chmod(0600); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("chmod log file: %w", err)
	}

	l := NewTo(f, minLevel)
	l.file = f
	return l, nil
}

// NewTo returns a logger writing to w. Close never closes w.
func NewTo(w io.Writer, minLevel Level) *Logger {
	return &Logger{out: w, minLevel: minLevel, now: time.Now}
}

// Close releases the log file. Lines logged afterwards are dropped.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) write(level Level, format string, args []any) {
	if l == nil || level < l.minLevel {
		return
	}

	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	_, err := fmt.Fprintf(l.out, "[%s] %s: %s\n", l.now().Format(timeLayout), level, msg)
	if err != nil && level == LevelError {
		fmt.Fprintf(os.Stderr, "log: %v (dropped: %s)\n", err, msg)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.write(LevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.write(LevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.write(LevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.write(LevelError, format, args) }

var (
	global   *Logger
	globalMu sync.RWMutex
)

// Init opens path as the process-wide log and closes the one it replaces.
// On error the previous logger stays installed.
func Init(path string, minLevel Level) error {
	l, err := New(path, minLevel)
	if err != nil {
		return err
	}

	globalMu.Lock()
	prev := global
	global = l
	globalMu.Unlock()

	return prev.Close()
}

// Default returns the logger installed by Init, or a NopLogger.
func Default() domain.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if global == nil {
		return NopLogger{}
	}
	return global
}

// Close closes and uninstalls the process-wide logger.
func Close() error {
	globalMu.Lock()
	l := global
	global = nil
	globalMu.Unlock()
	return l.Close()
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (NopLogger) Close() error         { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = NopLogger{}
)
