// Package wsfake provides an in-memory stand-in for transport.Conn so
// protocol tests can drive both ends of a session without a real
// socket or TLS handshake.
package wsfake

import (
	"io"
	"sync"
	"time"
)

// Conn implements transport.Conn over a pair of channels. Use NewPair
// to get two ends that talk to each other.
type Conn struct {
	out       chan []byte
	in        chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

// NewPair returns two connected Conns: writes to one are reads on the
// other.
func NewPair() (client, server *Conn) {
	a := make(chan []byte, 64)
	b := make(chan []byte, 64)
	client = &Conn{out: a, in: b, closed: make(chan struct{})}
	server = &Conn{out: b, in: a, closed: make(chan struct{})}
	return client, server
}

func (c *Conn) WriteMessage(messageType int, data []byte) error {
	cp := append([]byte(nil), data...)
	select {
	case c.out <- cp:
		return nil
	case <-c.closed:
		return io.ErrClosedPipe
	}
}

func (c *Conn) ReadMessage() (messageType int, data []byte, err error) {
	select {
	case data, ok := <-c.in:
		if !ok {
			return 0, nil, io.EOF
		}
		return 1, data, nil // 1 == transport.TextMessage
	case <-c.closed:
		return 0, nil, io.EOF
	}
}

func (c *Conn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *Conn) SetReadDeadline(t time.Time) error  { return nil }
func (c *Conn) SetWriteDeadline(t time.Time) error { return nil }
