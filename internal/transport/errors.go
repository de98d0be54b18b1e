package transport

import "errors"

// ErrMsgPackUnsupported is returned by Dial and Accept when the caller
// asks for the msgpack subprotocol. The envelope codec in
// internal/protocol only speaks JSON; wiring in a msgpack encoder is
// future work, not a wire-format limitation.
var ErrMsgPackUnsupported = errors.New("transport: msgpack encoding is not implemented")
