package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/loaderkit/diaglog/core"
)

// Formatter defines the interface for message formatters
type Formatter interface {
	// Format serializes a diagnostic message into bytes
	Format(msg *core.Message) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo serializes a diagnostic message and writes it directly to the writer
	FormatTo(msg *core.Message, w io.Writer) error
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
