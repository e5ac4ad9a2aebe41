// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/logfacade/src/internal/helper/gc"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Sink receives finished log lines.
// The facade treats every sink as best-effort: returned errors and panics are
// absorbed by the [SeverityWriter] and never reach the logging call site.
type Sink interface {
	// WriteLine writes one formatted line. line carries no trailing newline.
	WriteLine(line string) error
}

// LevelSink is an optional extension of [Sink]. When a sink implements it,
// the [SeverityWriter] passes the record's level along with the line.
type LevelSink interface {
	Sink
	WriteLevelLine(level Level, line string) error
}

// SinkFunc adapts an ordinary function to the [Sink] interface.
type SinkFunc func(line string) error

// WriteLine calls f(line).
func (f SinkFunc) WriteLine(line string) error { return f(line) }

// DiscardSink accepts and drops every line.
var DiscardSink Sink = SinkFunc(func(string) error { return nil })

// WriterSink writes each line followed by a newline to an [io.Writer].
//
// WriterSink is safe for concurrent use by multiple goroutines.
type WriterSink struct {
	mu     sync.Mutex
	writer io.Writer
}

var _ Sink = (*WriterSink)(nil)

// NewWriterSink creates a sink writing to w. A nil w discards output.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	return &WriterSink{writer: w}
}

// WriteLine writes line and a trailing newline in a single Write call.
func (s *WriterSink) WriteLine(line string) error {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	buf.WriteString(line)
	buf.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.writer.Write(buf.Bytes())
	return err
}

// SetOutput sets the output destination for the sink.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (s *WriterSink) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w == nil {
		s.writer = io.Discard
	} else {
		s.writer = w
	}
}

// ConsoleSink is a [LevelSink] for human consumption. When its writer is a
// terminal each line is coloured by severity; otherwise lines are written
// exactly as a [WriterSink] would write them. The NO_COLOR environment
// variable disables colouring.
//
// ConsoleSink is safe for concurrent use by multiple goroutines.
type ConsoleSink struct {
	mu       sync.Mutex
	writer   io.Writer
	colorize bool
	palette  map[Level]*color.Color
}

var _ LevelSink = (*ConsoleSink)(nil)

// DebugSink is the process-wide diagnostic sink used by the standard
// factories. It writes to os.Stderr; redirect it with SetOutput.
var DebugSink = NewConsoleSink(os.Stderr)

// NewConsoleSink creates a console sink writing to w. A nil w discards output.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	s := &ConsoleSink{palette: newPalette()}
	s.setOutput(w)
	return s
}

func newPalette() map[Level]*color.Color {
	return map[Level]*color.Color{
		LevelTrace:   color.New(color.FgHiBlack),
		LevelVerbose: color.New(color.FgHiBlack),
		LevelDebug:   color.New(color.FgCyan),
		LevelInfo:    color.New(color.FgGreen),
		LevelWarn:    color.New(color.FgYellow),
		LevelError:   color.New(color.FgRed),
		LevelFatal:   color.New(color.FgHiRed, color.Bold),
	}
}

// WriteLine writes line without colour.
func (s *ConsoleSink) WriteLine(line string) error {
	return s.write(nil, line)
}

// WriteLevelLine writes line coloured for level when colouring is on.
func (s *ConsoleSink) WriteLevelLine(level Level, line string) error {
	return s.write(s.palette[level], line)
}

func (s *ConsoleSink) write(c *color.Color, line string) error {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	if c != nil && s.colorize {
		buf.WriteString(c.Sprint(line))
	} else {
		buf.WriteString(line)
	}
	buf.WriteByte('\n')

	_, err := s.writer.Write(buf.Bytes())
	return err
}

// SetOutput sets the output destination and re-detects whether it is a terminal.
func (s *ConsoleSink) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setOutput(w)
}

func (s *ConsoleSink) setOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.writer = w
	s.applyColor(isTerminal(w) && os.Getenv("NO_COLOR") == "")
}

// SetColor forces colouring on or off until the next SetOutput.
func (s *ConsoleSink) SetColor(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyColor(on)
}

// Colorized reports whether lines are currently coloured.
func (s *ConsoleSink) Colorized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorize
}

// applyColor must be called with s.mu held or before s is shared.
func (s *ConsoleSink) applyColor(on bool) {
	s.colorize = on
	for _, c := range s.palette {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
