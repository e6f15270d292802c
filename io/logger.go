package keyio

import (
	"fmt"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the tag used for the level in log output.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides leveled logging bound to an IOManager. Errors and warnings
// go to the error writer, everything else to the output writer.
type Logger struct {
	mu         sync.Mutex
	io         *IOManager
	minLevel   LogLevel
	withTime   bool
	timeFormat string
}

// NewLogger creates a logger bound to the given IOManager.
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:         io,
		minLevel:   LevelInfo,
		timeFormat: "15:04:05",
	}
}

// MinLevel sets the lowest level that will be emitted.
func (l *Logger) MinLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTime enables a timestamp prefix on every line.
func (l *Logger) WithTime() *Logger {
	l.withTime = true
	return l
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Warnf logs at warning level.
func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarning, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}

	pal := l.io.Palette()
	tag := "[" + level.String() + "]"
	switch level {
	case LevelDebug:
		tag = pal.Dim(tag)
	case LevelWarning:
		tag = pal.Yellow(tag)
	case LevelError:
		tag = pal.Red(tag)
	case LevelInfo:
		tag = pal.Cyan(tag)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.io.Out()
	if level >= LevelWarning {
		w = l.io.Err()
	}

	if l.withTime {
		fmt.Fprintf(w, "%s %s ", time.Now().Format(l.timeFormat), tag)
	} else {
		fmt.Fprintf(w, "%s ", tag)
	}
	fmt.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}
