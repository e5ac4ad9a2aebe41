// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Level is the importance or severity of a log record.
// The higher the level, the more important or severe the record.
type Level int

// Log levels, ordered low to high.
//
// LevelTrace and LevelVerbose are two names for the same severity: they share
// a rank and every gate treats them identically. Both exist so code written
// against either naming convention reads naturally.
const (
	LevelTrace Level = iota
	LevelVerbose
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// ErrUnknownLevel is returned by [ParseLevel] for names that match no level.
var ErrUnknownLevel = errors.New("logger: unknown level")

var levelNames = [...]string{
	LevelTrace:   "Trace",
	LevelVerbose: "Verbose",
	LevelDebug:   "Debug",
	LevelInfo:    "Info",
	LevelWarn:    "Warn",
	LevelError:   "Error",
	LevelFatal:   "Fatal",
}

// String returns the tag written on emitted lines, e.g. "Warn".
func (l Level) String() string {
	if l.valid() {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Rank returns the position of l in the severity ordering.
// Trace and Verbose share rank 0.
func (l Level) Rank() int {
	if l <= LevelVerbose {
		return 0
	}
	return int(l) - 1
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// Levels returns every level from lowest to highest.
func Levels() []Level {
	return []Level{LevelTrace, LevelVerbose, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// normalizeName folds user supplied names ("WARN", "warn") to the tag spelling.
// A [cases.Caser] is stateful, so each call builds its own.
func normalizeName(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// ParseLevel returns the level whose tag matches s in any letter case.
// "warning" is accepted as an alias of "Warn".
func ParseLevel(s string) (Level, error) {
	name := normalizeName(s)
	if name == "Warning" {
		return LevelWarn, nil
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
