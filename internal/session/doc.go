// Package session orchestrates C1-C5 into one connected, authenticated
// OBS-WebSocket session and keeps a small amount of observable derived
// state in sync with the server (studio mode, current scenes).
//
// Ownership boundary:
//   - the connection lifecycle state machine
//   - feeding the handshake (C2) from the transport, then the single
//     dispatch loop that drains decoded messages and routes them to
//     C3/C4/C5
//   - derived state (CurrentSceneName and friends) kept current via
//     permanent event-bus listeners
package session
