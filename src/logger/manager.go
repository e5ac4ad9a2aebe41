// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"errors"
	"reflect"
	"sync/atomic"
)

// ErrNilFactory is returned when a nil factory is assigned to a [Manager].
// It is the only error the facade ever reports to its callers.
var ErrNilFactory = errors.New("logger: factory can not be nil")

// factoryValue boxes the interface so it can live in an atomic.Pointer.
type factoryValue struct{ f Factory }

// Manager routes GetLogger calls to its active [Factory] and carries the
// advisory verbose logging flag.
//
// The two fields are independent. The flag never changes what a logger emits;
// callers check it before building expensive log arguments. Each field is
// read and written atomically, but no ordering is promised between a
// factory swap and concurrent GetLogger calls: a logger obtained during a
// swap may come from either factory. Callers that need a consistent backend
// across several calls keep the returned Logger.
//
// Manager is safe for concurrent use by multiple goroutines.
type Manager struct {
	factory atomic.Pointer[factoryValue]
	verbose atomic.Bool
}

// NewManager returns a manager using [DefaultFactory] with verbose logging off.
func NewManager() *Manager {
	m := &Manager{}
	m.factory.Store(&factoryValue{f: DefaultFactory})
	return m
}

// GetLogger returns a logger named name from the active factory.
// Each call returns whatever the factory returns; the standard factories
// return a new instance every time.
func (m *Manager) GetLogger(name string) Logger {
	return m.Factory().GetLogger(name)
}

// Factory returns the active factory.
func (m *Manager) Factory() Factory {
	return m.factory.Load().f
}

// SetFactory replaces the active factory. It returns [ErrNilFactory] and
// keeps the current factory when f is nil or a typed nil pointer.
func (m *Manager) SetFactory(f Factory) error {
	if isNil(f) {
		return ErrNilFactory
	}
	m.factory.Store(&factoryValue{f: f})
	return nil
}

// SetVerboseEnabled sets the advisory verbose logging flag.
func (m *Manager) SetVerboseEnabled(enabled bool) {
	m.verbose.Store(enabled)
}

// VerboseEnabled returns the last value given to SetVerboseEnabled.
func (m *Manager) VerboseEnabled() bool {
	return m.verbose.Load()
}

func isNil(f Factory) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Interface, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// std is the process-wide manager, initialised before any caller can reach it.
var std = NewManager()

// Default returns the process-wide [Manager].
func Default() *Manager { return std }

// GetLogger returns a logger named name from the process-wide manager.
func GetLogger(name string) Logger { return std.GetLogger(name) }

// SetFactory replaces the process-wide active factory.
// It returns [ErrNilFactory] and keeps the current one when f is nil.
func SetFactory(f Factory) error { return std.SetFactory(f) }

// ActiveFactory returns the process-wide active factory.
func ActiveFactory() Factory { return std.Factory() }

// SetVerboseEnabled sets the process-wide advisory verbose flag.
func SetVerboseEnabled(enabled bool) { std.SetVerboseEnabled(enabled) }

// VerboseEnabled returns the process-wide advisory verbose flag.
func VerboseEnabled() bool { return std.VerboseEnabled() }
