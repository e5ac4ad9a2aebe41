// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"errors"
	"fmt"
)

// Factory creates [Logger] instances of one behavioural variant.
//
// Multiple calls with the same name are not guaranteed to return the same
// reference. The standard factories never cache: every call returns a new
// logger owned by the caller.
type Factory interface {
	GetLogger(name string) Logger
}

// FactoryFunc adapts an ordinary function to the [Factory] interface.
type FactoryFunc func(name string) Logger

// GetLogger calls f(name).
func (f FactoryFunc) GetLogger(name string) Logger { return f(name) }

// GatedFactory is a stateless [Factory] that stamps one [Gate] onto every
// logger it creates. Loggers from the same factory share its [SeverityWriter].
type GatedFactory struct {
	gate Gate
	w    *SeverityWriter
}

var _ Factory = (*GatedFactory)(nil)

// NewNullFactory returns a factory of [NullLogger] instances.
func NewNullFactory() *GatedFactory {
	return &GatedFactory{gate: GateNone}
}

// NewVerboseFactory returns a factory of loggers emitting every level to sink.
func NewVerboseFactory(sink Sink, opts ...WriterOption) *GatedFactory {
	return &GatedFactory{gate: GateAll, w: NewSeverityWriter(sink, opts...)}
}

// NewWarningFactory returns a factory of loggers emitting Warn and above to sink.
func NewWarningFactory(sink Sink, opts ...WriterOption) *GatedFactory {
	return &GatedFactory{gate: GateWarning, w: NewSeverityWriter(sink, opts...)}
}

// GetLogger returns a new logger named name. A [GateNone] factory returns a
// [*NullLogger], every other factory a [*GatedLogger].
func (f *GatedFactory) GetLogger(name string) Logger {
	if f.gate == GateNone {
		return NewNullLogger(name)
	}
	return NewGatedLogger(name, f.gate, f.w)
}

// Gate returns the gate stamped onto created loggers.
func (f *GatedFactory) Gate() Gate { return f.gate }

// Writer returns the writer shared by created loggers, nil for a null factory.
func (f *GatedFactory) Writer() *SeverityWriter { return f.w }

// Standard factories, created once and alive for the whole process.
// The gated ones write to [DebugSink].
var (
	NullFactory    = NewNullFactory()
	VerboseFactory = NewVerboseFactory(DebugSink)
	WarningFactory = NewWarningFactory(DebugSink)
	// DefaultFactory is the factory a fresh [Manager] starts with.
	DefaultFactory = WarningFactory
)

// Names of the standard factories as used by [FactoryByName] and [FactoryName].
const (
	FactoryNameNull    = "null"
	FactoryNameVerbose = "verbose"
	FactoryNameWarning = "warning"
	FactoryNameDefault = "default"
	FactoryNameCustom  = "custom"
)

// ErrUnknownFactory is returned by [FactoryByName] for unrecognised names.
var ErrUnknownFactory = errors.New("logger: unknown factory")

// FactoryByName resolves the name of a standard factory in any letter case.
// "default" resolves to [DefaultFactory].
func FactoryByName(name string) (Factory, error) {
	switch normalizeName(name) {
	case "Null":
		return NullFactory, nil
	case "Verbose":
		return VerboseFactory, nil
	case "Warning":
		return WarningFactory, nil
	case "Default":
		return DefaultFactory, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFactory, name)
	}
}

// FactoryName reports which standard factory f is, or "custom".
// [DefaultFactory] reports as "warning".
func FactoryName(f Factory) string {
	switch f {
	case Factory(NullFactory):
		return FactoryNameNull
	case Factory(VerboseFactory):
		return FactoryNameVerbose
	case Factory(WarningFactory):
		return FactoryNameWarning
	default:
		return FactoryNameCustom
	}
}
