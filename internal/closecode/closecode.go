// Package closecode translates the OBS-WebSocket close-code taxonomy
// (the 4000-4099 range defined by the protocol, layered over the
// standard WebSocket close codes) into typed, comparable values.
//
// This package depends only on the standard library: it is a pure
// lookup table over an int, and no third-party library in the example
// corpus offers anything beyond what a plain switch already does for
// that.
package closecode

import "fmt"

// Code is a close code as sent on the wire, whether it originated from
// RFC 6455 (the WebSocket standard range) or from the OBS-WebSocket
// protocol's own 4000-4099 range.
type Code int

const (
	// Standard WebSocket codes the engine treats specially.
	NormalClosure  Code = 1000
	GoingAway      Code = 1001
	AbnormalClosed Code = 1006

	// OBS-WebSocket protocol codes.
	UnknownReason         Code = 4000
	MessageDecodeError    Code = 4002
	MissingDataField      Code = 4003
	InvalidDataFieldType  Code = 4004
	InvalidDataFieldValue Code = 4005
	UnknownOpCode         Code = 4006
	NotIdentified         Code = 4007
	AlreadyIdentified     Code = 4008
	AuthenticationFailed  Code = 4009
	UnsupportedRPCVersion Code = 4010
	SessionInvalidated    Code = 4011
	UnsupportedFeature    Code = 4012
)

var names = map[Code]string{
	NormalClosure:         "normal closure",
	GoingAway:             "going away",
	AbnormalClosed:        "abnormal closure",
	UnknownReason:         "unknown reason",
	MessageDecodeError:    "message decode error",
	MissingDataField:      "missing data field",
	InvalidDataFieldType:  "invalid data field type",
	InvalidDataFieldValue: "invalid data field value",
	UnknownOpCode:         "unknown opcode",
	NotIdentified:         "not identified",
	AlreadyIdentified:     "already identified",
	AuthenticationFailed:  "authentication failed",
	UnsupportedRPCVersion: "unsupported rpc version",
	SessionInvalidated:    "session invalidated",
	UnsupportedFeature:    "unsupported feature",
}

func (c Code) String() string {
	if name, ok := names[c]; ok {
		return fmt.Sprintf("%s (%d)", name, int(c))
	}
	return fmt.Sprintf("close code %d", int(c))
}

// Retryable reports whether a session that closed with this code
// should attempt to reconnect. Codes that indicate a permanent
// protocol or auth mismatch are not retryable without a config change.
func (c Code) Retryable() bool {
	switch c {
	case AuthenticationFailed, UnsupportedRPCVersion, SessionInvalidated:
		return false
	default:
		return true
	}
}

// FromWebSocket maps a raw close code received from the transport
// (e.g. *websocket.CloseError.Code) into a Code value, covering both
// the standard WebSocket range and the OBS-WebSocket 4000-4099 range.
// It never errors: any code outside the known ranges is returned as-is
// for String()/Retryable to handle via their default cases.
func FromWebSocket(raw int) Code {
	return Code(raw)
}
