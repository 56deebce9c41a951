package neatjson

import "sync"

// Encoders are pooled so repeated Format calls on small documents reuse the
// same scratch buffer. Oversized buffers are dropped on release instead of
// pinning memory.
const maxScratchCap = 64 * 1024

var encoderPool = sync.Pool{
	New: func() any {
		return &encoder{}
	},
}

func acquireEncoder(opts *Options) *encoder {
	e := encoderPool.Get().(*encoder)
	e.reset(opts)
	return e
}

func releaseEncoder(e *encoder) {
	if e == nil {
		return
	}
	if cap(e.buf) > maxScratchCap {
		e.buf = nil
	} else {
		e.buf = e.buf[:0]
	}
	encoderPool.Put(e)
}
