// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

// NullLogger satisfies the [Logger] interface and discards all records.
// No formatting work is done and no sink is touched.
type NullLogger struct{ name string }

var _ Logger = (*NullLogger)(nil)

// NewNullLogger returns a new [NullLogger] named name.
func NewNullLogger(name string) *NullLogger { return &NullLogger{name: name} }

// Name returns the name the logger was created with.
func (l *NullLogger) Name() string { return l.name }

// Enabled always returns false.
func (*NullLogger) Enabled(Level) bool { return false }

func (*NullLogger) Trace(string, ...any)             {}
func (*NullLogger) TraceErr(error, string, ...any)   {}
func (*NullLogger) Verbose(string, ...any)           {}
func (*NullLogger) VerboseErr(error, string, ...any) {}
func (*NullLogger) Debug(string, ...any)             {}
func (*NullLogger) DebugErr(error, string, ...any)   {}
func (*NullLogger) Info(string, ...any)              {}
func (*NullLogger) InfoErr(error, string, ...any)    {}
func (*NullLogger) Warn(string, ...any)              {}
func (*NullLogger) WarnErr(error, string, ...any)    {}
func (*NullLogger) Error(string, ...any)             {}
func (*NullLogger) ErrorErr(error, string, ...any)   {}
func (*NullLogger) Fatal(string, ...any)             {}
func (*NullLogger) FatalErr(error, string, ...any)   {}
