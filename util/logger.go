// Package util provides low-level helpers shared by all other packages.
package util

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// Logger writes levelled messages through a zap console core.  Each line
// carries a level tag ([INF], [WRN], ...) and, optionally, a timestamp
// and the structured fields attached with [Logger.With].
type Logger struct {
	mu         sync.RWMutex
	level      LogLevel
	out        zapcore.WriteSyncer
	timestamps bool
	fields     []zap.Field
	z          *zap.Logger
	closer     io.Closer
}

// NewLogger returns a Logger that prints messages at or below the given
// verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug) to stderr.
func NewLogger(verbosity int) *Logger {
	l := &Logger{
		level:      LogLevel(verbosity),
		out:        zapcore.Lock(os.Stderr),
		timestamps: verbosity >= int(LogDebug),
	}
	l.rebuild()
	return l
}

// NewFileLogger is NewLogger with the sink redirected to path, opened
// for appending.  Timestamps are always on for file sinks.
func NewFileLogger(verbosity int, path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := NewLogger(verbosity)
	l.mu.Lock()
	l.out = zapcore.Lock(f)
	l.timestamps = true
	l.closer = f
	l.mu.Unlock()
	l.rebuild()
	return l, nil
}

// SetTimestamps enables or disables timestamp prefixes.
func (l *Logger) SetTimestamps(on bool) {
	l.mu.Lock()
	l.timestamps = on
	l.mu.Unlock()
	l.rebuild()
}

// SetOutput overrides the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = zapcore.AddSync(w)
	l.mu.Unlock()
	l.rebuild()
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// With returns a child logger that appends key=value to every line.
func (l *Logger) With(key, value string) *Logger {
	l.mu.RLock()
	child := &Logger{
		level:      l.level,
		out:        l.out,
		timestamps: l.timestamps,
		fields:     append(append([]zap.Field(nil), l.fields...), zap.String(key, value)),
	}
	l.mu.RUnlock()
	child.rebuild()
	return child
}

// Info prints when verbosity ≥ 1.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write(zapcore.InfoLevel, "INF", format, args...)
	}
}

// Warn prints when verbosity ≥ 1.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write(zapcore.WarnLevel, "WRN", format, args...)
	}
}

// Verbose prints when verbosity ≥ 2.
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l.level >= LogVerbose {
		l.write(zapcore.DebugLevel, "VRB", format, args...)
	}
}

// Debug prints when verbosity ≥ 3.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogDebug {
		l.write(zapcore.DebugLevel, "DBG", format, args...)
	}
}

// Error always prints regardless of verbosity.
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(zapcore.ErrorLevel, "ERR", format, args...)
}

// Close flushes the sink and closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.z.Sync()
	if l.closer != nil {
		err := l.closer.Close()
		l.closer = nil
		return err
	}
	return nil
}

func (l *Logger) write(lvl zapcore.Level, tag, format string, args ...interface{}) {
	l.mu.RLock()
	z := l.z
	l.mu.RUnlock()
	if ce := z.Check(lvl, "["+tag+"] "+fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

// rebuild swaps in a zap logger for the current sink settings.  The
// level tag lives in the message, so the encoder omits zap's own level.
func (l *Logger) rebuild() {
	l.mu.Lock()
	defer l.mu.Unlock()

	enc := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeDuration:   zapcore.StringDurationEncoder,
	}
	if l.timestamps {
		enc.TimeKey = "ts"
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), l.out, zapcore.DebugLevel)
	l.z = zap.New(core).With(l.fields...)
}
