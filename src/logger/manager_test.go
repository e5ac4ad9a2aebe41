// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts the process-wide manager back after a test mutates it.
func restoreDefault(t *testing.T) {
	t.Helper()
	f := logger.ActiveFactory()
	v := logger.VerboseEnabled()
	t.Cleanup(func() {
		require.NoError(t, logger.SetFactory(f))
		logger.SetVerboseEnabled(v)
	})
}

func TestManagerDefaults(t *testing.T) {
	m := logger.NewManager()
	assert.Same(t, logger.DefaultFactory, m.Factory())
	assert.False(t, m.VerboseEnabled())
	assert.NotNil(t, logger.Default())
}

func TestManager(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, m *logger.Manager)
	}{
		{
			name: "VerboseEnabledRoundTrip",
			testFunc: func(t *testing.T, m *logger.Manager) {
				m.SetVerboseEnabled(false)
				m.SetVerboseEnabled(true)
				assert.True(t, m.VerboseEnabled())
				m.SetVerboseEnabled(false)
				assert.False(t, m.VerboseEnabled())
			},
		},
		{
			name: "VerboseFlagIndependentOfFactory",
			testFunc: func(t *testing.T, m *logger.Manager) {
				sink := &captureSink{}
				require.NoError(t, m.SetFactory(logger.NewWarningFactory(sink)))
				m.SetVerboseEnabled(true)

				m.GetLogger("TestLogger").Info("still dropped")
				assert.Empty(t, sink.Lines(), "the flag is advisory only")

				require.NoError(t, m.SetFactory(logger.NullFactory))
				assert.True(t, m.VerboseEnabled())
			},
		},
		{
			name: "SetFactory",
			testFunc: func(t *testing.T, m *logger.Manager) {
				for _, f := range standardFactories() {
					require.NoError(t, m.SetFactory(f))
					assert.Same(t, f, m.Factory())
				}
			},
		},
		{
			name: "NilFactoryRejected",
			testFunc: func(t *testing.T, m *logger.Manager) {
				require.NoError(t, m.SetFactory(logger.VerboseFactory))

				assert.ErrorIs(t, m.SetFactory(nil), logger.ErrNilFactory)
				assert.Same(t, logger.VerboseFactory, m.Factory())

				var typedNil *logger.GatedFactory
				assert.ErrorIs(t, m.SetFactory(typedNil), logger.ErrNilFactory)

				var nilFunc logger.FactoryFunc
				assert.ErrorIs(t, m.SetFactory(nilFunc), logger.ErrNilFactory)
				assert.Same(t, logger.VerboseFactory, m.Factory())
			},
		},
		{
			name: "GetLoggerNames",
			testFunc: func(t *testing.T, m *logger.Manager) {
				for _, f := range standardFactories() {
					require.NoError(t, m.SetFactory(f))
					for _, name := range []string{"TestLogger", ""} {
						assert.Equal(t, name, m.GetLogger(name).Name())
					}
				}
			},
		},
		{
			name: "GetLoggerNeverCaches",
			testFunc: func(t *testing.T, m *logger.Manager) {
				a := m.GetLogger("TestLogger")
				b := m.GetLogger("TestLogger")
				assert.NotSame(t, a, b)

				c := m.GetLogger("TestLogger1")
				d := m.GetLogger("TestLogger2")
				assert.NotSame(t, c, d)
			},
		},
		{
			name: "CustomFactory",
			testFunc: func(t *testing.T, m *logger.Manager) {
				calls := 0
				require.NoError(t, m.SetFactory(logger.FactoryFunc(func(name string) logger.Logger {
					calls++
					return logger.NewNullLogger("custom:" + name)
				})))
				assert.Equal(t, "custom:x", m.GetLogger("x").Name())
				assert.Equal(t, 1, calls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, logger.NewManager())
		})
	}
}

func TestProcessWideManager(t *testing.T) {
	restoreDefault(t)

	sink := &captureSink{}
	require.NoError(t, logger.SetFactory(logger.NewVerboseFactory(sink)))
	logger.SetVerboseEnabled(true)

	log := logger.GetLogger("TestLogger")
	if logger.VerboseEnabled() {
		log.Verbose("{0} {1} {2} {3}", "this", "is", "a", "test")
	}

	lines := sink.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Verbose-TestLogger")
	assert.Contains(t, lines[0], "this is a test")

	assert.ErrorIs(t, logger.SetFactory(nil), logger.ErrNilFactory)
	assert.Same(t, logger.Default().Factory(), logger.ActiveFactory())
}

func TestManagerRace(t *testing.T) {
	m := logger.NewManager()
	factories := []logger.Factory{logger.NullFactory, logger.NewVerboseFactory(nil), logger.NewWarningFactory(nil)}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(2)
		go func(f logger.Factory) {
			defer wg.Done()
			_ = m.SetFactory(f)
			m.SetVerboseEnabled(!m.VerboseEnabled())
		}(factories[i%len(factories)])
		go func() {
			defer wg.Done()
			log := m.GetLogger("racer")
			log.Warn("swap in progress")
			assert.Equal(t, "racer", log.Name())
		}()
	}
	wg.Wait()

	require.NoError(t, m.SetFactory(factories[1]))
	assert.Same(t, factories[1], m.Factory())
}
