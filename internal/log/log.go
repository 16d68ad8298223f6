// Package log provides the leveled logger used by hufftree.
// Messages are written as single lines of the form
//
//	LEVEL message key=value ...
//
// The package is a thin layer over log/slog.
package log

import (
	"io"
	"log/slog"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Error = slog.LevelError
)

// Logger is a slog.Logger with a few conveniences.
type Logger struct{ *slog.Logger }

// New builds a logger that writes to the given writer.
// The logger defaults to level Info.
func New(w io.Writer) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: Info})}
}

// Wrap adapts an existing slog.Logger.  A nil logger yields Discard.
func Wrap(l *slog.Logger) *Logger {
	if l == nil {
		return Discard
	}
	return &Logger{l}
}

// Level reports the minimum level this logger writes.
// Loggers that were not built by New report Info.
func (l *Logger) Level() Level {
	if h, ok := l.Handler().(*handler); ok {
		return h.Level
	}
	return Info
}

// WithLevel builds a new logger that writes messages at or above lvl.
// It has no effect on loggers that were not built by New.
func (l *Logger) WithLevel(lvl Level) *Logger {
	h, ok := l.Handler().(*handler)
	if !ok {
		return l
	}
	out := *h
	out.Level = lvl
	return &Logger{slog.New(&out)}
}

// WithName builds a new logger with the provided name. The returned logger is
// safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	out := *l
	out.Logger = l.WithGroup(name)
	return &out
}
