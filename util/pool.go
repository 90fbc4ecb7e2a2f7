package util

import "sync"

// DefaultBufSize is the staging buffer size for codec I/O (32 KiB).
const DefaultBufSize = 32 * 1024

// BufPool provides reusable byte buffers for streaming scripts through
// the compressor, so repeated sends don't reallocate staging space.
var BufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, DefaultBufSize)
		return &buf
	},
}

// GetBuf retrieves a buffer from the pool.  Callers must return it
// with [PutBuf] when finished.
func GetBuf() *[]byte {
	return BufPool.Get().(*[]byte)
}

// PutBuf returns a buffer to the pool for reuse.
func PutBuf(buf *[]byte) {
	if buf == nil {
		return
	}
	BufPool.Put(buf)
}
