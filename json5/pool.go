package json5

import "sync"

// maxPooledTokenCap bounds what PutTokenBuffer will accept back, so one
// unusually large parse doesn't pin an oversized backing array in the pool
// for the rest of the process's lifetime.
const maxPooledTokenCap = 4096

var tokenBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]Token, 0, 256)
		return &buf
	},
}

// GetTokenBuffer returns a scratch []Token with length capacity, reused from
// a pool when possible, so repeated Parse calls on a hot path can stay
// allocation-free after the pool has warmed up. Pair with PutTokenBuffer.
func GetTokenBuffer(capacity int) *[]Token {
	bufPtr := tokenBufferPool.Get().(*[]Token)
	buf := *bufPtr
	if cap(buf) < capacity {
		buf = make([]Token, capacity)
	} else {
		buf = buf[:capacity]
	}
	*bufPtr = buf
	return bufPtr
}

// PutTokenBuffer returns buf to the pool for reuse.
func PutTokenBuffer(buf *[]Token) {
	if buf == nil || cap(*buf) > maxPooledTokenCap {
		return
	}
	*buf = (*buf)[:0]
	tokenBufferPool.Put(buf)
}
