package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/danmuck/obswire/internal/batch"
	"github.com/danmuck/obswire/internal/closecode"
	"github.com/danmuck/obswire/internal/correlator"
	"github.com/danmuck/obswire/internal/eventbus"
	"github.com/danmuck/obswire/internal/events"
	"github.com/danmuck/obswire/internal/handshake"
	"github.com/danmuck/obswire/internal/logging"
	"github.com/danmuck/obswire/internal/protocol"
	"github.com/danmuck/obswire/internal/requests"
	"github.com/danmuck/obswire/internal/transport"
)

// Options configures one Session. Reconnect backoff is a policy
// decision left to the caller (see cmd/obsctl's connectWithBackoff),
// not a Session concern.
type Options struct {
	URL                string
	Password           string
	EventSubscriptions protocol.EventSubscription
}

// Session is a connected OBS-WebSocket client: the dial/handshake
// lifecycle plus C3/C4/C5 wired to one transport.Conn.
type Session struct {
	opts Options

	stateMu sync.RWMutex
	state   State

	connMu sync.Mutex
	conn   transport.Conn

	writeMu sync.Mutex

	correlator *correlator.Correlator
	batch      *batch.Executor
	bus        *eventbus.Bus
	Status     *StatusSignal

	derivedMu           sync.RWMutex
	studioModeEnabled   bool
	currentProgramScene string
	currentPreviewScene string

	closeMu       sync.RWMutex
	lastCloseCode closecode.Code

	unsubscribers []func()
}

func New(opts Options) *Session {
	s := &Session{
		opts:          opts,
		bus:           eventbus.New(),
		Status:        NewStatusSignal(),
		lastCloseCode: closecode.UnknownReason,
	}
	s.correlator = correlator.New(s.send)
	s.batch = batch.New(s.send)
	return s
}

func (s *Session) setState(st State) {
	s.stateMu.Lock()
	s.state = st
	s.stateMu.Unlock()
	logging.Debugf("session: state=%s", st)
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Connect dials, performs the handshake, and on success starts the
// dispatch loop and bootstraps derived state.
func (s *Session) Connect(ctx context.Context) error {
	if s.State() != StateDisconnected {
		return ErrAlreadyConnected
	}
	s.setState(StateConnecting)

	conn, _, err := transport.Dial(ctx, s.opts.URL, transport.EncodingJSON)
	if err != nil {
		s.setState(StateDisconnected)
		return fmt.Errorf("session: connect: %w", err)
	}
	return s.connectOver(ctx, conn)
}

// connectOver drives the handshake and post-handshake bootstrap over
// an already-established connection. Connect uses this after dialing;
// tests use it directly over an internal/testutil/wsfake.Conn to avoid
// a real socket.
func (s *Session) connectOver(ctx context.Context, conn transport.Conn) error {
	s.connMu.Lock()
	s.conn = conn
	s.connMu.Unlock()

	s.setState(StateAwaitingHello)
	identified, err := handshake.Run(ctx, handshake.Options{
		Password:           s.opts.Password,
		EventSubscriptions: s.opts.EventSubscriptions,
	}, s.send, s.readNext)
	if err != nil {
		var ce *websocket.CloseError
		if errors.As(err, &ce) {
			switch closecode.FromWebSocket(ce.Code) {
			case closecode.AuthenticationFailed:
				err = fmt.Errorf("%w: %v", handshake.ErrAuthenticationFailed, err)
			case closecode.UnsupportedRPCVersion:
				err = fmt.Errorf("%w: %v", handshake.ErrUnsupportedRPCVersion, err)
			}
		}
		s.teardown()
		return fmt.Errorf("session: handshake: %w", err)
	}
	logging.Infof("session: identified negotiatedRpcVersion=%d", identified.NegotiatedRPCVersion)

	s.setState(StateIdentified)
	s.Status.Set(true)

	go s.dispatchLoop()
	s.installPermanentListeners()
	s.bootstrap(ctx)
	return nil
}

// Close tears down the connection, completing every pending request
// with correlator.ErrDisconnected. Pending batches are not completed:
// an Execute still waiting returns only when its ctx is done.
func (s *Session) Close() error {
	return s.teardown()
}

func (s *Session) teardown() error {
	for _, unsub := range s.unsubscribers {
		unsub()
	}
	s.unsubscribers = nil

	s.correlator.Disconnect()

	s.connMu.Lock()
	conn := s.conn
	s.conn = nil
	s.connMu.Unlock()

	s.setState(StateDisconnected)
	s.Status.Set(false)

	if conn == nil {
		return nil
	}
	return conn.Close()
}

// send encodes and writes one envelope. Writes are serialized under
// writeMu so the server receives frames in submission order (O1).
func (s *Session) send(op protocol.Opcode, payload any) error {
	raw, err := protocol.Encode(op, payload)
	if err != nil {
		return err
	}
	s.connMu.Lock()
	conn := s.conn
	s.connMu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteMessage(transport.TextMessage, raw)
}

// readNext blocks for the next decoded envelope. It is used directly
// by internal/handshake during the handshake, and by dispatchLoop
// afterward.
func (s *Session) readNext(ctx context.Context) (protocol.Opcode, json.RawMessage, error) {
	s.connMu.Lock()
	conn := s.conn
	s.connMu.Unlock()
	if conn == nil {
		return 0, nil, ErrNotConnected
	}

	type result struct {
		op  protocol.Opcode
		raw json.RawMessage
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		_, data, err := conn.ReadMessage()
		if err != nil {
			resultCh <- result{err: err}
			return
		}
		op, raw, err := protocol.Decode(data)
		resultCh <- result{op: op, raw: raw, err: err}
	}()

	select {
	case r := <-resultCh:
		return r.op, r.raw, r.err
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	}
}

// dispatchLoop is the session's single goroutine that drains decoded
// messages off the transport and routes them to C3/C4/C5. It is the
// only reader of the connection once the handshake completes.
func (s *Session) dispatchLoop() {
	ctx := context.Background()
	for {
		op, raw, err := s.readNext(ctx)
		if err != nil {
			code := closecode.AbnormalClosed
			if ce, ok := err.(*websocket.CloseError); ok {
				code = closecode.FromWebSocket(ce.Code)
			}
			s.closeMu.Lock()
			s.lastCloseCode = code
			s.closeMu.Unlock()
			logging.Warnf("session: dispatch loop exiting: %v (close=%s retryable=%v)", err, code, code.Retryable())
			s.teardown()
			return
		}
		switch op {
		case protocol.OpEvent:
			ev, err := protocol.DecodePayload[protocol.EventData](op, raw)
			if err != nil {
				logging.Errorf("session: decoding event envelope: %v", err)
				continue
			}
			s.bus.Dispatch(ev)
		case protocol.OpRequestResponse:
			resp, err := protocol.DecodePayload[protocol.RequestResponseData](op, raw)
			if err != nil {
				logging.Errorf("session: decoding request response envelope: %v", err)
				continue
			}
			s.correlator.HandleResponse(resp)
		case protocol.OpRequestBatchResponse:
			resp, err := protocol.DecodePayload[protocol.RequestBatchResponseData](op, raw)
			if err != nil {
				logging.Errorf("session: decoding batch response envelope: %v", err)
				continue
			}
			s.batch.HandleResponse(resp)
		default:
			logging.Warnf("session: unexpected opcode %s outside handshake, ignoring", op)
		}
	}
}

// Request sends one correlated request and blocks for its response.
func (s *Session) Request(ctx context.Context, requestType string, data any) (any, error) {
	p, err := s.correlator.Send(ctx, requestType, data)
	if err != nil {
		return nil, err
	}
	return p.Wait(ctx)
}

// Execute submits a batch and blocks for its mapped results.
func (s *Session) Execute(ctx context.Context, execType protocol.ExecutionType, haltOnFailure bool, reqs []batch.Request) (map[string]batch.Result, error) {
	return s.batch.Execute(ctx, execType, haltOnFailure, reqs)
}

// Events exposes the event bus so callers can subscribe directly.
func (s *Session) Events() *eventbus.Bus {
	return s.bus
}

// LastCloseCode reports the translated close code from the most recent
// disconnect, or closecode.UnknownReason before any disconnect has
// happened.
func (s *Session) LastCloseCode() closecode.Code {
	s.closeMu.RLock()
	defer s.closeMu.RUnlock()
	return s.lastCloseCode
}

// IsStudioModeEnabled reports the last known studio-mode flag.
func (s *Session) IsStudioModeEnabled() bool {
	s.derivedMu.RLock()
	defer s.derivedMu.RUnlock()
	return s.studioModeEnabled
}

// CurrentProgramSceneName reports the last known program scene name.
func (s *Session) CurrentProgramSceneName() string {
	s.derivedMu.RLock()
	defer s.derivedMu.RUnlock()
	return s.currentProgramScene
}

// CurrentPreviewSceneName reports the last known preview scene name,
// or "" outside studio mode.
func (s *Session) CurrentPreviewSceneName() string {
	s.derivedMu.RLock()
	defer s.derivedMu.RUnlock()
	return s.currentPreviewScene
}

// CurrentSceneName is the preview scene while studio mode is enabled
// and a preview scene is known, else the program scene.
func (s *Session) CurrentSceneName() string {
	s.derivedMu.RLock()
	defer s.derivedMu.RUnlock()
	if s.studioModeEnabled && s.currentPreviewScene != "" {
		return s.currentPreviewScene
	}
	return s.currentProgramScene
}

// bootstrap issues the initial state-sync requests on entering
// Identified: studio mode, then (fanned out concurrently,
// errgroup-style) the program scene and, if studio mode is enabled,
// the preview scene.
func (s *Session) bootstrap(ctx context.Context) {
	studioResult, err := s.Request(ctx, requests.GetStudioModeEnabled, struct{}{})
	if err != nil {
		logging.Warnf("session: bootstrap GetStudioModeEnabled: %v", err)
	} else if resp, ok := studioResult.(requests.GetStudioModeEnabledResponse); ok {
		s.derivedMu.Lock()
		s.studioModeEnabled = resp.StudioModeEnabled
		s.derivedMu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		result, err := s.Request(ctx, requests.GetCurrentProgramScene, struct{}{})
		if err != nil {
			logging.Warnf("session: bootstrap GetCurrentProgramScene: %v", err)
			return
		}
		if resp, ok := result.(requests.GetCurrentProgramSceneResponse); ok {
			s.derivedMu.Lock()
			s.currentProgramScene = resp.SceneName
			s.derivedMu.Unlock()
		}
	}()

	if s.IsStudioModeEnabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := s.Request(ctx, requests.GetCurrentPreviewScene, struct{}{})
			if err != nil {
				logging.Warnf("session: bootstrap GetCurrentPreviewScene: %v", err)
				return
			}
			if resp, ok := result.(requests.GetCurrentPreviewSceneResponse); ok {
				s.derivedMu.Lock()
				s.currentPreviewScene = resp.SceneName
				s.derivedMu.Unlock()
			}
		}()
	}
	wg.Wait()
}

// installPermanentListeners wires the three event subscriptions that
// keep derived state current for the lifetime of the session.
func (s *Session) installPermanentListeners() {
	studioCh, studioUnsub := s.bus.All(events.StudioModeStateChanged)
	s.unsubscribers = append(s.unsubscribers, studioUnsub)
	go func() {
		for d := range studioCh {
			if d.Err != nil {
				continue
			}
			data, ok := d.Payload.(events.StudioModeStateChangedData)
			if !ok {
				continue
			}
			s.derivedMu.Lock()
			s.studioModeEnabled = data.StudioModeEnabled
			if !data.StudioModeEnabled {
				s.currentPreviewScene = ""
			}
			s.derivedMu.Unlock()
		}
	}()

	programCh, programUnsub := s.bus.All(events.CurrentProgramSceneChanged)
	s.unsubscribers = append(s.unsubscribers, programUnsub)
	go func() {
		for d := range programCh {
			if d.Err != nil {
				continue
			}
			data, ok := d.Payload.(events.CurrentProgramSceneChangedData)
			if !ok {
				continue
			}
			s.derivedMu.Lock()
			s.currentProgramScene = data.SceneName
			s.derivedMu.Unlock()
		}
	}()

	previewCh, previewUnsub := s.bus.All(events.CurrentPreviewSceneChanged)
	s.unsubscribers = append(s.unsubscribers, previewUnsub)
	go func() {
		for d := range previewCh {
			if d.Err != nil {
				continue
			}
			data, ok := d.Payload.(events.CurrentPreviewSceneChangedData)
			if !ok {
				continue
			}
			s.derivedMu.Lock()
			s.currentPreviewScene = data.SceneName
			s.derivedMu.Unlock()
		}
	}()
}
