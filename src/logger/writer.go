// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"sync/atomic"
	"time"

	"github.com/H0llyW00dzZ/logfacade/src/internal/helper/gc"
)

// TimestampLayout is the layout of the timestamp that starts every line
// (yyyy-MM-dd HH:mm:ss.fff).
const TimestampLayout = "2006-01-02 15:04:05.000"

// ErrorSeparator introduces the error detail of an error-attached record.
const ErrorSeparator = "Exception:"

// Record is one log record. It exists only for the duration of a single
// logging call and is never queued or stored.
type Record struct {
	Time    time.Time
	Level   Level
	Name    string
	Message string
	Args    []any
	// Err is rendered after the message when HasErr is set, even if nil.
	Err    error
	HasErr bool
}

// FormatRecord renders r as a single line:
//
//	<timestamp>\t<Level>-<Name>\t<message>[\tException:\n<error detail>]
//
// Args are substituted into the message only; the name and the error detail
// are written verbatim.
func FormatRecord(r Record) string {
	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	var ts [len(TimestampLayout)]byte
	buf.Write(r.Time.AppendFormat(ts[:0], TimestampLayout))
	buf.WriteByte('\t')
	buf.WriteString(r.Level.String())
	buf.WriteByte('-')
	buf.WriteString(r.Name)
	buf.WriteByte('\t')
	buf.WriteString(FormatTemplate(r.Message, r.Args...))
	if r.HasErr {
		buf.WriteByte('\t')
		buf.WriteString(ErrorSeparator)
		buf.WriteByte('\n')
		buf.WriteString(ErrorDetail(r.Err))
	}
	return buf.String()
}

// SeverityWriter formats records and hands the lines to a [Sink].
// It is shared by every logger a level-gated factory creates.
//
// SeverityWriter never propagates a failure: sink errors and panics raised
// while formatting or writing are recovered, counted and dropped.
type SeverityWriter struct {
	sink    Sink
	now     func() time.Time
	dropped atomic.Uint64
}

// WriterOption configures a [SeverityWriter].
type WriterOption func(*SeverityWriter)

// WithClock sets the function used to timestamp records.
func WithClock(now func() time.Time) WriterOption {
	return func(w *SeverityWriter) {
		if now != nil {
			w.now = now
		}
	}
}

// NewSeverityWriter returns a writer delivering to sink.
// A nil sink is replaced with [DiscardSink].
func NewSeverityWriter(sink Sink, opts ...WriterOption) *SeverityWriter {
	if sink == nil {
		sink = DiscardSink
	}
	w := &SeverityWriter{sink: sink, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Sink returns the sink lines are delivered to.
func (w *SeverityWriter) Sink() Sink { return w.sink }

// Write emits a message-only record.
func (w *SeverityWriter) Write(level Level, name, msg string, args []any) {
	w.emit(Record{Level: level, Name: name, Message: msg, Args: args})
}

// WriteErr emits a record with err attached.
func (w *SeverityWriter) WriteErr(level Level, name string, err error, msg string, args []any) {
	w.emit(Record{Level: level, Name: name, Message: msg, Args: args, Err: err, HasErr: true})
}

// Dropped returns how many records were lost to formatting or sink failures.
func (w *SeverityWriter) Dropped() uint64 { return w.dropped.Load() }

func (w *SeverityWriter) emit(r Record) {
	defer func() {
		if recover() != nil {
			w.dropped.Add(1)
		}
	}()

	r.Time = w.now()
	line := FormatRecord(r)

	var err error
	if ls, ok := w.sink.(LevelSink); ok {
		err = ls.WriteLevelLine(r.Level, line)
	} else {
		err = w.sink.WriteLine(line)
	}
	if err != nil {
		w.dropped.Add(1)
	}
}
