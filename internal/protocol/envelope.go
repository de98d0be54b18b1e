package protocol

import (
	"encoding/json"
	"fmt"
)

// Envelope is the outer `{"op": ..., "d": ...}` message shape every
// OBS-WebSocket frame uses. Decoding is two steps: unmarshal into an
// Envelope to read Op, then unmarshal D into the concrete payload the
// opcode selects.
type Envelope struct {
	Op Opcode          `json:"op"`
	D  json.RawMessage `json:"d"`
}

// Encode marshals payload as the "d" field of an envelope tagged with op.
func Encode(op Opcode, payload any) ([]byte, error) {
	d, err := json.Marshal(payload)
	if err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	return json.Marshal(Envelope{Op: op, D: d})
}

// Decode unmarshals the outer envelope and returns its opcode and raw
// payload bytes for the caller to re-parse into a concrete shape.
func Decode(data []byte) (Opcode, json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return 0, nil, &DecodeError{Err: fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)}
	}
	// Op's zero value is OpHello, so presence is checked separately.
	var present struct {
		Op *Opcode `json:"op"`
	}
	if err := json.Unmarshal(data, &present); err != nil || present.Op == nil {
		return 0, nil, &DecodeError{Field: "op", Err: ErrMissingField}
	}
	if env.D == nil {
		return 0, nil, &DecodeError{Op: env.Op, Field: "d", Err: ErrMissingField}
	}
	if !env.Op.Known() {
		return 0, nil, &DecodeError{Op: env.Op, Field: "op", Err: ErrUnknownOpcode}
	}
	return env.Op, env.D, nil
}

// DecodePayload re-parses an envelope's raw "d" field into a concrete
// payload shape, wrapping any failure with field context.
func DecodePayload[T any](op Opcode, d json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(d, &v); err != nil {
		return v, &DecodeError{Op: op, Field: "d", Err: err}
	}
	return v, nil
}
