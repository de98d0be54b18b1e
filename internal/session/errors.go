package session

import "errors"

var (
	// ErrNotConnected is returned by operations that require an
	// Identified session when none is active.
	ErrNotConnected = errors.New("session: not connected")

	// ErrAlreadyConnected is returned by Connect when a connection
	// attempt or an active session already exists.
	ErrAlreadyConnected = errors.New("session: already connected")
)
