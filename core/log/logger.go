// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type used by the verifier packages. The
//              API keeps the field-oriented style of the foundation logger while
//              zerolog does the encoding. Libraries default to a no-op logger so
//              that verification never writes output unless asked to.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: zerolog backed logger with persistent fields

package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	mdwerror "github.com/msto63/verifier/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	zl    zerolog.Logger
	level Level
	name  string
}

// Config represents logger configuration
type Config struct {
	Level   Level
	Format  Format
	Output  io.Writer
	Name    string
	NoColor bool
}

// New creates a new logger writing JSON to stdout at the default level
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	zl := zerolog.New(config.Format.writer(out, config.NoColor)).
		Level(config.Level.zerolog()).
		With().Timestamp().Logger()

	if config.Name != "" {
		zl = zl.With().Str("logger", config.Name).Logger()
	}

	return &Logger{zl: zl, level: config.Level, name: config.Name}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop(), level: LevelDisabled}
}

// WithName returns a copy of the logger with a component name
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		zl:    l.zl.With().Str("logger", name).Logger(),
		level: l.level,
		name:  name,
	}
}

// WithField returns a copy of the logger with a persistent field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy of the logger with persistent fields
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{
		zl:    l.zl.With().Fields(map[string]interface{}(fields)).Logger(),
		level: l.level,
		name:  l.name,
	}
}

// WithLevel returns a copy of the logger with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{zl: l.zl.Level(level.zerolog()), level: level, name: l.name}
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs a message with an attached error at error level
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a message with an attached error at warn level
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs a structured error, picking the level from its severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	e, ok := mdwerror.As(err)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"code":     e.Code().String(),
		"severity": e.Severity().String(),
	}
	if op := e.Operation(); op != "" {
		fields["operation"] = op
	}
	for k, v := range e.Details() {
		fields[k] = v
	}

	level := LevelError
	switch e.Severity() {
	case mdwerror.SeverityLow:
		level = LevelDebug
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}

	l.log(level, e.Message(), e.Unwrap(), fields)
}

// IsLevelEnabled reports whether messages at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level != LevelDisabled && level >= l.level
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}

	event := l.zl.WithLevel(level.zerolog())
	if event == nil {
		return
	}
	if err != nil {
		event = event.Err(err)
	}
	for _, f := range fields {
		if len(f) > 0 {
			event = event.Fields(map[string]interface{}(f))
		}
	}
	event.Msg(message)
}

var (
	defaultLogger   = Nop()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the package default logger
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		logger = Nop()
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}
