// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
)

func BenchmarkVerboseLogger_Info(b *testing.B) {
	log := logger.NewVerboseFactory(logger.NewWriterSink(io.Discard)).GetLogger("bench")

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info("Benchmark message {0}", i)
	}
}

func BenchmarkWarningLogger_InfoDropped(b *testing.B) {
	log := logger.NewWarningFactory(logger.NewWriterSink(io.Discard)).GetLogger("bench")

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		log.Info("Benchmark message {0}", i)
	}
}

func BenchmarkVerboseLogger_InfoConcurrent(b *testing.B) {
	log := logger.NewVerboseFactory(logger.NewWriterSink(io.Discard)).GetLogger("bench")

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			log.Info("Concurrent message {0}", i)
			i++
		}
	})
}

func BenchmarkManager_GetLogger(b *testing.B) {
	m := logger.NewManager()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = m.GetLogger("bench")
	}
}
