// Package log adapts go.uber.org/zap to the narrow core.Logger contract
// the runtime consumes (spec.md §6). This is the ambient logging
// implementation; core itself only ever depends on the core.Logger
// interface, never on zap directly.
package log

import (
	"go.uber.org/zap"

	"github.com/actorkit/actorkit/core"
)

// zapLogger adapts *zap.SugaredLogger to core.Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a production zap.Logger (JSON encoding, info level) and
// returns it wrapped as a core.Logger.
func New() (core.Logger, error) {
	zl, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: zl.Sugar()}, nil
}

// NewDevelopment builds a human-readable, colorized development logger,
// wrapped as a core.Logger.
func NewDevelopment() (core.Logger, error) {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: zl.Sugar()}, nil
}

func (l *zapLogger) Debug(msg string, kv ...any)   { l.sugar.Debugw(msg, kv...) }
func (l *zapLogger) Info(msg string, kv ...any)    { l.sugar.Infow(msg, kv...) }
func (l *zapLogger) Warning(msg string, kv ...any) { l.sugar.Warnw(msg, kv...) }
func (l *zapLogger) Error(msg string, kv ...any)   { l.sugar.Errorw(msg, kv...) }
func (l *zapLogger) Fatal(msg string, kv ...any)   { l.sugar.Fatalw(msg, kv...) }

func (l *zapLogger) Exception(msg string, err error, kv ...any) {
	l.sugar.Errorw(msg, append([]any{"error", err}, kv...)...)
}

func (l *zapLogger) Log(level core.Level, msg string, kv ...any) {
	switch level {
	case core.LevelDebug:
		l.Debug(msg, kv...)
	case core.LevelInfo:
		l.Info(msg, kv...)
	case core.LevelWarning:
		l.Warning(msg, kv...)
	case core.LevelError:
		l.Error(msg, kv...)
	case core.LevelFatal:
		l.Fatal(msg, kv...)
	default:
		l.Info(msg, kv...)
	}
}

// Bind returns a derived Logger with kv permanently attached, never
// mutating the receiver — zap's own With(...) already has this shape.
func (l *zapLogger) Bind(kv ...any) core.Logger {
	return &zapLogger{sugar: l.sugar.With(kv...)}
}
