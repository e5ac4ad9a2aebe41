// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

// Logger defines the interface for named, leveled logging.
// It provides one plain and one error-attached method per severity level.
//
// Messages are templates with positional placeholders ({0}, {1}, ...) filled
// from args, see [FormatTemplate]. The error-attached variants render the
// error and its cause chain after the message, see [ErrorDetail].
//
// No method returns an error or panics: a record that cannot be formatted
// or written is dropped.
type Logger interface {
	// Name returns the name the logger was created with.
	Name() string
	// Enabled reports whether a call at level would produce a line.
	Enabled(level Level) bool

	Trace(msg string, args ...any)
	TraceErr(err error, msg string, args ...any)
	Verbose(msg string, args ...any)
	VerboseErr(err error, msg string, args ...any)
	Debug(msg string, args ...any)
	DebugErr(err error, msg string, args ...any)
	Info(msg string, args ...any)
	InfoErr(err error, msg string, args ...any)
	Warn(msg string, args ...any)
	WarnErr(err error, msg string, args ...any)
	Error(msg string, args ...any)
	ErrorErr(err error, msg string, args ...any)
	// Fatal logs at LevelFatal. It does not terminate the process.
	Fatal(msg string, args ...any)
	FatalErr(err error, msg string, args ...any)
}

// Gate is the minimum severity a logger variant emits.
// Records below the gate are dropped without being formatted.
type Gate int

const (
	// GateNone drops every record.
	GateNone Gate = iota
	// GateAll emits every record from Trace upward.
	GateAll
	// GateWarning emits Warn, Error and Fatal only.
	GateWarning
)

// Allows reports whether records at level pass the gate.
func (g Gate) Allows(level Level) bool {
	switch g {
	case GateAll:
		return level.valid()
	case GateWarning:
		return level.valid() && level.Rank() >= LevelWarn.Rank()
	default:
		return false
	}
}

func (g Gate) String() string {
	switch g {
	case GateNone:
		return "none"
	case GateAll:
		return "all"
	case GateWarning:
		return "warning"
	default:
		return "unknown"
	}
}
