// Package transport owns the WebSocket binding the session drives. It
// exposes a minimal Conn interface so the protocol engine drives the
// socket only through it; internal/session imports gorilla/websocket
// solely to inspect *websocket.CloseError.
package transport

import "time"

// Conn is the subset of *websocket.Conn the engine needs. It exists so
// internal/testutil/wsfake can stand in for a real socket in tests.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (messageType int, data []byte, err error)
	Close() error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

// Message types, mirrored from gorilla/websocket so callers outside this
// package never need to import it directly.
const (
	TextMessage   = 1
	BinaryMessage = 2
	CloseMessage  = 8
	PingMessage   = 9
	PongMessage   = 10
)
