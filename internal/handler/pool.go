package handler

import (
	"bytes"
	"sync"
)

// bufferPool recycles bytes.Buffer values across JSON responses. Session
// views are re-encoded on every action, so this path is hot.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer hands buf back reset, ready for the next response.
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
