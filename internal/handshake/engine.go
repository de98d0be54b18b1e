package handshake

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danmuck/obswire/internal/auth"
	"github.com/danmuck/obswire/internal/logging"
	"github.com/danmuck/obswire/internal/protocol"
)

// SupportedRPCVersion is the RPC version this library negotiates during
// Identify. There is only ever one version in flight at a time; a
// server that requires a different version closes with 4010, which
// internal/session surfaces as ErrUnsupportedRPCVersion.
const SupportedRPCVersion = 1

// SendFunc transmits an encoded opcode/payload pair over the
// connection. It is supplied by internal/session, which owns the
// transport and the write mutex (O1 in the concurrency model).
type SendFunc func(op protocol.Opcode, payload any) error

// RecvFunc blocks until the next decoded envelope arrives, or ctx is
// done, or the connection fails.
type RecvFunc func(ctx context.Context) (protocol.Opcode, json.RawMessage, error)

// Options configures one handshake attempt.
type Options struct {
	Password           string
	EventSubscriptions protocol.EventSubscription
	// IdentifyDelay, if non-zero, is waited out before sending Identify.
	// The reference OBS-WebSocket client always waits one second; this
	// implementation defaults to zero and leaves the choice to callers.
	IdentifyDelay time.Duration
}

// Run executes one Hello -> Identify -> Identified exchange and returns
// the server's Identified payload on success.
func Run(ctx context.Context, opts Options, send SendFunc, recv RecvFunc) (protocol.IdentifiedData, error) {
	var zero protocol.IdentifiedData

	op, raw, err := recv(ctx)
	if err != nil {
		return zero, fmt.Errorf("handshake: awaiting hello: %w", err)
	}
	if op != protocol.OpHello {
		logging.Warnf("handshake: expected Hello, got op=%s", op)
		return zero, fmt.Errorf("%w: expected Hello, got %s", ErrProtocolViolation, op)
	}
	hello, err := protocol.DecodePayload[protocol.HelloData](op, raw)
	if err != nil {
		return zero, fmt.Errorf("handshake: decoding hello: %w", err)
	}

	identify, err := deriveIdentify(hello, opts)
	if err != nil {
		return zero, err
	}

	if opts.IdentifyDelay > 0 {
		select {
		case <-time.After(opts.IdentifyDelay):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	if err := send(protocol.OpIdentify, identify); err != nil {
		return zero, fmt.Errorf("handshake: sending identify: %w", err)
	}

	op, raw, err = recv(ctx)
	if err != nil {
		return zero, fmt.Errorf("handshake: awaiting identified: %w", err)
	}
	if op != protocol.OpIdentified {
		logging.Warnf("handshake: expected Identified, got op=%s", op)
		return zero, fmt.Errorf("%w: expected Identified, got %s", ErrProtocolViolation, op)
	}
	identified, err := protocol.DecodePayload[protocol.IdentifiedData](op, raw)
	if err != nil {
		return zero, fmt.Errorf("handshake: decoding identified: %w", err)
	}
	logging.Infof("handshake: identified negotiatedRpcVersion=%d", identified.NegotiatedRPCVersion)
	return identified, nil
}

func deriveIdentify(hello protocol.HelloData, opts Options) (protocol.IdentifyData, error) {
	identify := protocol.IdentifyData{
		RPCVersion:         SupportedRPCVersion,
		EventSubscriptions: opts.EventSubscriptions.IntPtr(),
	}
	if hello.Authentication == nil {
		return identify, nil
	}
	if opts.Password == "" {
		return protocol.IdentifyData{}, ErrMissingPassword
	}
	identify.Authentication = auth.ComputeResponse(
		opts.Password,
		hello.Authentication.Salt,
		hello.Authentication.Challenge,
	)
	return identify, nil
}
