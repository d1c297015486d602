package solver_test

import (
	"bytes"
	"sync"
)

// safeWriter serializes writes from the solver and engine loggers.
type safeWriter struct {
	mu  sync.Mutex
	buf *bytes.Buffer
}

func (w *safeWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.buf.Write(p)
}
