package handler

import (
	"bytes"
	"sync"
)

// Responses larger than this (full database exports) are not recycled
const maxPooledBufferSize = 64 << 10

// encodeBuffers recycles the buffers JSON responses are encoded into
var encodeBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}
