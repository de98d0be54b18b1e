// Package handshake drives the Hello -> Identify -> Identified exchange
// that brings a freshly dialed connection into an authenticated,
// subscribed session.
//
// Ownership boundary:
//   - the AwaitingHello / AwaitingIdentified state machine
//   - deriving an Identify reply from a Hello (including the
//     challenge-response authentication string)
//   - the terminal failure sentinels the rest of the engine checks for
package handshake
