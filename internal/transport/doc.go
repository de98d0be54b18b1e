// Package transport binds the protocol engine to a real socket.
//
// Ownership boundary:
//   - WebSocket dial/accept and subprotocol negotiation
//   - the minimal Conn surface the rest of the module depends on
//
// Outside this package, only internal/session imports
// github.com/gorilla/websocket, to read the close code from a
// *websocket.CloseError; cmd/obsmock goes through Accept.
package transport
