// internal/fourletter/errors.go
package fourletter

import (
	"errors"
	"fmt"
)

// ConnError covers refused connections, timeouts, and socket failures
// mid-read. It is never retried; the caller classifies the instance
// instead.
type ConnError struct {
	Addr string
	Cmd  string
	Err  error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("fourletter: %s %s: %v", e.Cmd, e.Addr, e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }

// OverrunError means the peer kept streaming past the read cap. It
// carries how much was read before giving up.
type OverrunError struct {
	Addr      string
	Cmd       string
	BytesRead int
	MaxReads  int
}

func (e *OverrunError) Error() string {
	return fmt.Sprintf("fourletter: %s %s: read %d bytes without close, exceeded %d reads",
		e.Cmd, e.Addr, e.BytesRead, e.MaxReads)
}

// IsTransport reports whether err is a transport-level failure.
// Overruns count: a peer that never closes is as unusable as one that
// never answers.
func IsTransport(err error) bool {
	var ce *ConnError
	var oe *OverrunError
	return errors.As(err, &ce) || errors.As(err, &oe)
}
