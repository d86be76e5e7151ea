package logging

import (
	"io"
	"sync"

	"go.uber.org/multierr"
)

// CombinedWriter copies every write to all of its writers. A failing writer
// does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer

	mu  sync.Mutex
	err error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: append([]io.Writer(nil), writers...)}
}

// Write fails only when no writer accepted p. Errors from the writers that
// failed while others succeeded are kept for Err.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	failed := 0
	for _, w := range cw.Writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
			failed++
		}
	}
	if err == nil {
		return len(p), nil
	}
	if failed == len(cw.Writers) {
		return 0, err
	}

	cw.mu.Lock()
	cw.err = multierr.Append(cw.err, err)
	cw.mu.Unlock()
	return len(p), nil
}

// Err returns the combined errors of partially failed writes so far.
func (cw *CombinedWriter) Err() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.err
}
