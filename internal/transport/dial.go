package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Encoding names the wire encoding negotiated over the WebSocket
// subprotocol header.
type Encoding int

const (
	EncodingJSON Encoding = iota
	EncodingMsgPack
)

const (
	SubprotocolJSON    = "obswebsocket.json"
	SubprotocolMsgPack = "obswebsocket.msgpack"
)

func (e Encoding) Subprotocol() string {
	if e == EncodingMsgPack {
		return SubprotocolMsgPack
	}
	return SubprotocolJSON
}

// DialTimeout bounds the WebSocket handshake itself, not anything that
// happens over the connection afterward.
const DialTimeout = 10 * time.Second

// Dial opens a WebSocket connection to an OBS-WebSocket server and
// negotiates the given encoding's subprotocol. MsgPack is accepted by
// the type system so callers can plumb it through configuration, but
// this module only implements the JSON codec; see ErrMsgPackUnsupported.
func Dial(ctx context.Context, rawURL string, encoding Encoding) (Conn, *http.Response, error) {
	if encoding == EncodingMsgPack {
		return nil, nil, ErrMsgPackUnsupported
	}
	dialer := websocket.Dialer{
		Subprotocols:     []string{encoding.Subprotocol()},
		HandshakeTimeout: DialTimeout,
	}
	conn, resp, err := dialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		return nil, resp, fmt.Errorf("transport: dial %s: %w", rawURL, err)
	}
	return conn, resp, nil
}
