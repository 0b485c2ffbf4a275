// internal/fourletter/client.go
package fourletter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"time"
)

// Client speaks ZooKeeper's plaintext four-letter-word admin protocol.
// Every command is one connection: dial, send, read until the peer
// closes. No retries, no pooling.
type Client struct {
	Host    string
	Port    int
	Timeout time.Duration

	// MaxReads caps the read loop against a peer that never closes
	// the connection. Zero means the default cap.
	MaxReads int
}

const chunkSize = 1024
const defaultMaxReads = 10000

// New creates a client for one admin endpoint.
func New(host string, port int, timeout time.Duration) *Client {
	return &Client{
		Host:     host,
		Port:     port,
		Timeout:  timeout,
		MaxReads: defaultMaxReads,
	}
}

// Addr is the host:port the client talks to.
func (c *Client) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Send issues one command and returns the full response body.
// Connect failures, timeouts, and mid-read socket errors come back as
// *ConnError; a peer that streams past the read cap as *OverrunError.
func (c *Client) Send(ctx context.Context, cmd string) ([]byte, error) {
	dialer := net.Dialer{Timeout: c.Timeout}

	conn, err := dialer.DialContext(ctx, "tcp", c.Addr())
	if err != nil {
		return nil, &ConnError{Addr: c.Addr(), Cmd: cmd, Err: err}
	}
	defer conn.Close()

	// One deadline covers the write and the whole read loop.
	if err := conn.SetDeadline(time.Now().Add(c.Timeout)); err != nil {
		return nil, &ConnError{Addr: c.Addr(), Cmd: cmd, Err: err}
	}

	if _, err := conn.Write([]byte(cmd)); err != nil {
		return nil, &ConnError{Addr: c.Addr(), Cmd: cmd, Err: err}
	}

	maxReads := c.MaxReads
	if maxReads <= 0 {
		maxReads = defaultMaxReads
	}

	var buf bytes.Buffer
	chunk := make([]byte, chunkSize)
	for reads := 0; ; reads++ {
		if reads >= maxReads {
			return nil, &OverrunError{
				Addr:      c.Addr(),
				Cmd:       cmd,
				BytesRead: buf.Len(),
				MaxReads:  maxReads,
			}
		}

		n, err := conn.Read(chunk)
		buf.Write(chunk[:n])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ConnError{Addr: c.Addr(), Cmd: cmd, Err: err}
		}
	}

	return buf.Bytes(), nil
}
