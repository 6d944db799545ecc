package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the façade the rest of this module logs through: a small,
// level-gated wrapper over a zap.SugaredLogger so call sites never import
// zap directly.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Error(args ...interface{})
	Sync() error
}

// sugaredLogger satisfies Logger entirely through method promotion from
// *zap.SugaredLogger, which already exposes Debugw/Infow/Warnw/Errorw/Error/Sync.
type sugaredLogger struct {
	*zap.SugaredLogger
}

// globalLogger is used internally by this package (e.g. NewFileAppender) for
// its own setup failures, before a caller-supplied Logger exists. It is a
// no-op logger, so those messages are discarded.
var globalLogger = sugaredLogger{zap.NewNop().Sugar()}

// NewLogger builds a Logger that tees every entry at or above level to each
// of appenders.
func NewLogger(level zapcore.Level, appenders ...Appender) Logger {
	cores := make([]zapcore.Core, 0, len(appenders))
	for _, a := range appenders {
		cores = append(cores, newAppenderCore(a, level))
	}
	core := zapcore.NewTee(cores...)
	return sugaredLogger{zap.New(core).Sugar()}
}

// newAppenderCore adapts an Appender (this package's narrower interface)
// into a full zapcore.Core so it can be combined with zap.New.
func newAppenderCore(a Appender, level zapcore.Level) zapcore.Core {
	return &appenderCore{appender: a, level: level}
}

type appenderCore struct {
	appender Appender
	level    zapcore.Level
	fields   []zapcore.Field
}

func (c *appenderCore) Enabled(lvl zapcore.Level) bool { return lvl >= c.level }

func (c *appenderCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &appenderCore{appender: c.appender, level: c.level, fields: merged}
}

func (c *appenderCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func (c *appenderCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	return c.appender.Write(entry, all)
}

func (c *appenderCore) Sync() error { return c.appender.Sync() }
