// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
	Bytes() []byte
	String() string
	Len() int
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put resets the buffer and returns it to the pool.
// Buffers that did not come from a [bytebufferpool.Pool] are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		buf.Reset()
		p.p.Put(buf)
	}
}

// NewPool returns an independent buffer pool.
// Each pool calibrates its default buffer size to the lines it sees,
// so callers with very different line sizes should not share one.
func NewPool() Pool { return &pool{p: &bytebufferpool.Pool{}} }

// Default is the buffer pool shared by the log line writers.
//
// Example usage:
//
//	buf := gc.Default.Get()
//	defer gc.Default.Put(buf) // Put resets the buffer before reuse
//
//	buf.WriteString(timestamp)
//	buf.WriteByte('\t')
//	buf.WriteString(message)
//
//	line := buf.String() // copy out before the buffer goes back to the pool
var Default Pool = NewPool()
