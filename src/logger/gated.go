// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

// GatedLogger implements the [Logger] interface for the level-gated variants.
// Records at or above the gate are formatted and written by a shared
// [SeverityWriter]; records below it are dropped before any formatting.
//
// The verbose logger is a GatedLogger with [GateAll], the warning logger one
// with [GateWarning].
type GatedLogger struct {
	name string
	gate Gate
	w    *SeverityWriter
}

var _ Logger = (*GatedLogger)(nil)

// NewGatedLogger returns a new [GatedLogger]. A nil w discards every line.
func NewGatedLogger(name string, gate Gate, w *SeverityWriter) *GatedLogger {
	if w == nil {
		w = NewSeverityWriter(DiscardSink)
	}
	return &GatedLogger{name: name, gate: gate, w: w}
}

// NewVerboseLogger returns a logger emitting every level to sink.
func NewVerboseLogger(name string, sink Sink) *GatedLogger {
	return NewGatedLogger(name, GateAll, NewSeverityWriter(sink))
}

// NewWarningLogger returns a logger emitting Warn, Error and Fatal to sink.
func NewWarningLogger(name string, sink Sink) *GatedLogger {
	return NewGatedLogger(name, GateWarning, NewSeverityWriter(sink))
}

// Name returns the name the logger was created with.
func (l *GatedLogger) Name() string { return l.name }

// Gate returns the logger's minimum severity gate.
func (l *GatedLogger) Gate() Gate { return l.gate }

// Enabled reports whether the logger's gate lets level through.
func (l *GatedLogger) Enabled(level Level) bool { return l.gate.Allows(level) }

// Trace logs at the trace level.
func (l *GatedLogger) Trace(msg string, args ...any) { l.log(LevelTrace, msg, args) }

// TraceErr logs at the trace level with err attached.
func (l *GatedLogger) TraceErr(err error, msg string, args ...any) {
	l.logErr(LevelTrace, err, msg, args)
}

// Verbose logs at the verbose level, which gates exactly like trace.
func (l *GatedLogger) Verbose(msg string, args ...any) { l.log(LevelVerbose, msg, args) }

// VerboseErr logs at the verbose level with err attached.
func (l *GatedLogger) VerboseErr(err error, msg string, args ...any) {
	l.logErr(LevelVerbose, err, msg, args)
}

// Debug logs at the debug level.
func (l *GatedLogger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args) }

// DebugErr logs at the debug level with err attached.
func (l *GatedLogger) DebugErr(err error, msg string, args ...any) {
	l.logErr(LevelDebug, err, msg, args)
}

// Info logs at the info level.
func (l *GatedLogger) Info(msg string, args ...any) { l.log(LevelInfo, msg, args) }

// InfoErr logs at the info level with err attached.
func (l *GatedLogger) InfoErr(err error, msg string, args ...any) {
	l.logErr(LevelInfo, err, msg, args)
}

// Warn logs at the warn level.
func (l *GatedLogger) Warn(msg string, args ...any) { l.log(LevelWarn, msg, args) }

// WarnErr logs at the warn level with err attached.
func (l *GatedLogger) WarnErr(err error, msg string, args ...any) {
	l.logErr(LevelWarn, err, msg, args)
}

// Error logs at the error level.
func (l *GatedLogger) Error(msg string, args ...any) { l.log(LevelError, msg, args) }

// ErrorErr logs at the error level with err attached.
func (l *GatedLogger) ErrorErr(err error, msg string, args ...any) {
	l.logErr(LevelError, err, msg, args)
}

// Fatal logs at the fatal level. It does not terminate the process.
func (l *GatedLogger) Fatal(msg string, args ...any) { l.log(LevelFatal, msg, args) }

// FatalErr logs at the fatal level with err attached.
func (l *GatedLogger) FatalErr(err error, msg string, args ...any) {
	l.logErr(LevelFatal, err, msg, args)
}

func (l *GatedLogger) log(level Level, msg string, args []any) {
	if l.gate.Allows(level) {
		l.w.Write(level, l.name, msg, args)
	}
}

func (l *GatedLogger) logErr(level Level, err error, msg string, args []any) {
	if l.gate.Allows(level) {
		l.w.WriteErr(level, l.name, err, msg, args)
	}
}
