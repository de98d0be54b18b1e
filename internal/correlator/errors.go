package correlator

import (
	"errors"
	"fmt"

	"github.com/danmuck/obswire/internal/protocol"
)

// ErrDisconnected completes every pending entry when the session tears
// down the connection.
var ErrDisconnected = errors.New("correlator: session disconnected")

// RequestFailedError wraps the server's non-success RequestStatus for
// one request.
type RequestFailedError struct {
	RequestType string
	Status      protocol.RequestStatus
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("correlator: request %s failed: code=%d comment=%q",
		e.RequestType, e.Status.Code, e.Status.Comment)
}

// ResponseDecodeError wraps a failure to decode responseData into the
// type registered for a request's discriminator.
type ResponseDecodeError struct {
	RequestType string
	Err         error
}

func (e *ResponseDecodeError) Error() string {
	return fmt.Sprintf("correlator: decoding response for %s: %v", e.RequestType, e.Err)
}

func (e *ResponseDecodeError) Unwrap() error { return e.Err }
