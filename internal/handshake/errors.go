package handshake

import "errors"

var (
	// ErrMissingPassword is returned when Hello carries an
	// Authentication challenge but no password was configured.
	ErrMissingPassword = errors.New("handshake: server requires a password, none configured")

	// ErrAuthenticationFailed mirrors the server closing the socket
	// with close code 4009. Run returns the read error as-is;
	// internal/session wraps it with this sentinel.
	ErrAuthenticationFailed = errors.New("handshake: authentication failed")

	// ErrUnsupportedRPCVersion mirrors close code 4010, wrapped onto
	// the handshake error by internal/session in the same way.
	ErrUnsupportedRPCVersion = errors.New("handshake: unsupported rpc version")

	// ErrProtocolViolation is returned when a message other than the
	// one expected for the current handshake state arrives.
	ErrProtocolViolation = errors.New("handshake: protocol violation")
)
