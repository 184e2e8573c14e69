package argio

import (
	"fmt"
	"io"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the level's message prefix.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ANSI SGR codes per level: error red, warning yellow, info blue,
// debug uncolored.
func (l LogLevel) colorCode() string {
	switch l {
	case LevelError:
		return "31"
	case LevelWarning:
		return "33"
	case LevelInfo:
		return "34"
	default:
		return ""
	}
}

// Logger writes leveled, colored messages through a Manager. Errors and
// warnings go to the error stream by default.
type Logger struct {
	io           *Manager
	minLevel     LogLevel
	errorsStderr bool
}

// NewLogger creates a logger bound to the given manager.
func NewLogger(m *Manager) *Logger {
	return &Logger{
		io:           m,
		minLevel:     LevelInfo,
		errorsStderr: true,
	}
}

// WithMinLevel sets the lowest level that is emitted.
func (l *Logger) WithMinLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// ErrorsToStderr controls whether errors and warnings go to stderr.
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// Log outputs a message at the given level as "<level>: <message>".
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	prefix := l.io.Colorize(level.String()+":", level.colorCode())
	fmt.Fprintf(l.selectWriter(level), "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

func (l *Logger) selectWriter(level LogLevel) io.Writer {
	if l.errorsStderr && (level == LevelError || level == LevelWarning) {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debugf logs a debug message, uncolored.
func (l *Logger) Debugf(format string, args ...any) {
	l.Log(LevelDebug, format, args...)
}

// Infof logs an informational message, blue prefix.
func (l *Logger) Infof(format string, args ...any) {
	l.Log(LevelInfo, format, args...)
}

// Warnf logs a warning message, yellow prefix.
func (l *Logger) Warnf(format string, args ...any) {
	l.Log(LevelWarning, format, args...)
}

// Errorf logs an error message, red prefix.
func (l *Logger) Errorf(format string, args ...any) {
	l.Log(LevelError, format, args...)
}
