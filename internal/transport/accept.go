package transport

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	Subprotocols: []string{SubprotocolJSON, SubprotocolMsgPack},
	CheckOrigin:  func(r *http.Request) bool { return true },
}

// Accept upgrades an incoming HTTP request to a WebSocket connection.
// It is used by cmd/obsmock to stand in for a real OBS instance during
// manual testing; against a real OBS this module is always the dialing
// side and OBS accepts.
func Accept(w http.ResponseWriter, r *http.Request) (Conn, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: accept: %w", err)
	}
	if conn.Subprotocol() == SubprotocolMsgPack {
		conn.Close()
		return nil, ErrMsgPackUnsupported
	}
	return conn, nil
}
