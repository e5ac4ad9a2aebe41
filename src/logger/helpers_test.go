// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"errors"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
)

// fixedTime is the clock used by tests that compare whole lines.
var fixedTime = time.Date(2024, time.January, 2, 3, 4, 5, 6_000_000, time.Local)

func fixedClock() time.Time { return fixedTime }

// captureSink records every line it receives.
type captureSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *captureSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	return nil
}

func (s *captureSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

var errSinkDown = errors.New("sink down")

// failingSink rejects every line.
var failingSink = logger.SinkFunc(func(string) error { return errSinkDown })

// panickingSink panics on every line.
var panickingSink = logger.SinkFunc(func(string) error { panic("listener detached") })

// logAt calls the plain method of l for level.
func logAt(l logger.Logger, level logger.Level, msg string, args ...any) {
	switch level {
	case logger.LevelTrace:
		l.Trace(msg, args...)
	case logger.LevelVerbose:
		l.Verbose(msg, args...)
	case logger.LevelDebug:
		l.Debug(msg, args...)
	case logger.LevelInfo:
		l.Info(msg, args...)
	case logger.LevelWarn:
		l.Warn(msg, args...)
	case logger.LevelError:
		l.Error(msg, args...)
	case logger.LevelFatal:
		l.Fatal(msg, args...)
	}
}

// logErrAt calls the error-attached method of l for level.
func logErrAt(l logger.Logger, level logger.Level, err error, msg string, args ...any) {
	switch level {
	case logger.LevelTrace:
		l.TraceErr(err, msg, args...)
	case logger.LevelVerbose:
		l.VerboseErr(err, msg, args...)
	case logger.LevelDebug:
		l.DebugErr(err, msg, args...)
	case logger.LevelInfo:
		l.InfoErr(err, msg, args...)
	case logger.LevelWarn:
		l.WarnErr(err, msg, args...)
	case logger.LevelError:
		l.ErrorErr(err, msg, args...)
	case logger.LevelFatal:
		l.FatalErr(err, msg, args...)
	}
}
