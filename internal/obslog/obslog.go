// Package obslog wraps zap with a bracketed "[component] message"
// console texture backed by structured fields instead of fmt.Printf,
// so the same log line is greppable and parseable.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a component-scoped structured logger.
type Logger struct {
	z         *zap.Logger
	component string
}

var base *zap.Logger

func init() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	base = l
}

// New returns a Logger tagged with component, e.g. "chunk", "merge",
// "scheduler".
func New(component string) *Logger {
	return &Logger{z: base.With(zap.String("component", component)), component: component}
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.z.Info("[" + l.component + "] " + msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn("[" + l.component + "] " + msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.z.Error("[" + l.component + "] " + msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.z.Debug("[" + l.component + "] " + msg, fields...)
}

// Sync flushes any buffered log entries. Call once at process exit.
func Sync() {
	_ = base.Sync()
}
