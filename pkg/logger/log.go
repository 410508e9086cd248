package logger

import (
	"context"
	"fmt"
	"strings"

	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/util"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Interface is an interface that wraps the Logger methods.
//
//go:generate mockgen -source log.go -destination=mock/log_mock.go -package=logger_mock
type Interface interface {
	Debug(message string, fields ...Field)
	DebugContext(ctx context.Context, message string, fields ...Field)
	Error(err error, fields ...Field)
	ErrorContext(ctx context.Context, err error, fields ...Field)
	GetZap() *zap.Logger
	Info(message string, fields ...Field)
	InfoContext(ctx context.Context, message string, fields ...Field)
	Sync() error
	Warn(message string, fields ...Field)
	WarnContext(ctx context.Context, message string, fields ...Field)
	WithFields(fields ...Field) *Logger
}

// Logger is a wrapper around zap.Logger to provide structured logging.
type Logger struct {
	logger *zap.Logger
}

// Field holds key-value to be written to log.
type Field struct {
	Key   string
	Value any
}

// Options holds configuration options for the logger.
type Options struct {
	level           Level
	encoding        string
	timeKey         string
	callerTraceSkip int
}

// Level represents the severity level of the log.
type Level string

var (
	// DebugLevel is used for debug messages.
	DebugLevel Level = "debug"
	// InfoLevel is used for informational messages.
	InfoLevel Level = "info"
	// WarnLevel is used for warning messages.
	WarnLevel Level = "warn"
	// ErrorLevel is used for error messages.
	ErrorLevel Level = "error"

	messageKey string = "message"
)

func (level Level) getZapLevel() zapcore.Level {
	switch Level(strings.ToLower(string(level))) {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger creates new Logger instance with configuration options.
func NewLogger(opts ...Options) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	var buildOptions []zap.Option

	for _, opt := range opts {
		if opt.level != "" {
			cfg.Level = zap.NewAtomicLevelAt(opt.level.getZapLevel())
		}
		if opt.encoding != "" {
			cfg.Encoding = opt.encoding
		}
		if opt.timeKey != "" {
			cfg.EncoderConfig.TimeKey = opt.timeKey
		}
		if opt.callerTraceSkip > 0 {
			buildOptions = append(buildOptions, zap.AddCallerSkip(opt.callerTraceSkip))
		}
	}

	cfg.EncoderConfig.MessageKey = messageKey
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(buildOptions...)
	if err != nil {
		return nil, errors.NewTracer(string(errors.LoggerBuildError)).Wrap(err)
	}
	return &Logger{
		logger: logger,
	}, nil
}

// NewNopLogger returns a Logger that discards every entry.
func NewNopLogger() *Logger {
	return &Logger{logger: zap.NewNop()}
}

// Sync flush the buffered log entries
func (l *Logger) Sync() error {
	return l.logger.Sync()
}

// WithLoggingLevel is used to set the minimum log level that will be logged.
// If not set, it will log `info` level and above by default
func WithLoggingLevel(level Level) Options {
	return Options{
		level: level,
	}
}

// WithEncoding selects the zap encoder, either "json" or "console".
func WithEncoding(encoding string) Options {
	return Options{
		encoding: encoding,
	}
}

// WithTimeKey will use key as reference for log time entry.
func WithTimeKey(key string) Options {
	return Options{
		timeKey: key,
	}
}

// WithCallerTraceSkip will skip X lines from trace log
func WithCallerTraceSkip(skip int) Options {
	return Options{
		callerTraceSkip: skip,
	}
}

// GetZap returns zap.Logger instance used by log.Logger
func (l *Logger) GetZap() *zap.Logger {
	return l.logger
}

// NewField returns Field with given key and value.
func NewField(key string, value any) Field {
	return Field{key, value}
}

// Info write log with severity level info
func (l *Logger) Info(message string, fields ...Field) {
	l.logger.Info(message, convertFields(fields...)...)
}

// InfoContext write log with severity level info and append the run id and symbol to given fields.
func (l *Logger) InfoContext(ctx context.Context, message string, fields ...Field) {
	l.Info(message, appendContext(ctx, fields)...)
}

// Warn write log with severity level warn
func (l *Logger) Warn(message string, fields ...Field) {
	l.logger.Warn(message, convertFields(fields...)...)
}

// WarnContext write log with severity level warn and append the run id and symbol to given fields.
func (l *Logger) WarnContext(ctx context.Context, message string, fields ...Field) {
	l.Warn(message, appendContext(ctx, fields)...)
}

// Debug Write log with severity level debug
func (l *Logger) Debug(message string, fields ...Field) {
	l.logger.Debug(message, convertFields(fields...)...)
}

// DebugContext Write log with severity level debug and append the run id and symbol to given fields.
func (l *Logger) DebugContext(ctx context.Context, message string, fields ...Field) {
	l.Debug(message, appendContext(ctx, fields)...)
}

// Error write log with severity level error. When err carries a stack trace
// the trace replaces zap's own caller stack.
func (l *Logger) Error(err error, fields ...Field) {
	zapFields := convertFields(fields...)
	stacktrace := ""

	if errTracer, ok := err.(errors.StackTracer); ok {
		stacktrace = strings.TrimSpace(fmt.Sprintf("%+v", errTracer.StackTrace()))
	}

	if ce := l.logger.Check(zapcore.ErrorLevel, err.Error()); ce != nil {
		if stacktrace != "" {
			ce.Stack = stacktrace
		}
		ce.Write(zapFields...)
	}
}

// ErrorContext write log with severity level error and append the run id and symbol to given fields.
func (l *Logger) ErrorContext(ctx context.Context, err error, fields ...Field) {
	l.Error(err, appendContext(ctx, fields)...)
}

// WithFields returns a child logger with additional fields.
func (l *Logger) WithFields(fields ...Field) *Logger {
	return &Logger{
		logger: l.logger.With(convertFields(fields...)...),
	}
}

// convertFields transform fields to zap log fields
func convertFields(fields ...Field) []zapcore.Field {
	zapFields := make([]zapcore.Field, 0, len(fields))
	for _, field := range fields {
		zapFields = append(zapFields, zap.Any(field.Key, field.Value))
	}
	return zapFields
}

// appendContext appends the run id and symbol carried by ctx to given fields.
func appendContext(ctx context.Context, fields []Field) []Field {
	if runID := util.GetRunID(ctx); runID != "" {
		fields = append(fields, NewField("run_id", runID))
	}
	if symbol := util.GetSymbol(ctx); symbol != "" {
		fields = append(fields, NewField("symbol", symbol))
	}
	return fields
}
