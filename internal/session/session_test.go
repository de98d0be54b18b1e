package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/danmuck/obswire/internal/events"
	"github.com/danmuck/obswire/internal/protocol"
	"github.com/danmuck/obswire/internal/requests"
	"github.com/danmuck/obswire/internal/testutil/testlog"
	"github.com/danmuck/obswire/internal/testutil/wsfake"
)

// fakeServer drives the peer end of a wsfake.Conn pair, answering
// Hello/Identify and queued requests the way a minimal OBS instance
// would, without any real networking.
type fakeServer struct {
	conn *wsfake.Conn
}

func (f *fakeServer) writeEnvelope(t *testing.T, op protocol.Opcode, payload any) {
	t.Helper()
	raw, err := protocol.Encode(op, payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := f.conn.WriteMessage(1, raw); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func (f *fakeServer) readEnvelope(t *testing.T) (protocol.Opcode, json.RawMessage) {
	t.Helper()
	_, data, err := f.conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	op, raw, err := protocol.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return op, raw
}

func (f *fakeServer) handshake(t *testing.T) {
	t.Helper()
	f.writeEnvelope(t, protocol.OpHello, protocol.HelloData{RPCVersion: 1})
	op, _ := f.readEnvelope(t)
	if op != protocol.OpIdentify {
		t.Fatalf("got op=%s, want Identify", op)
	}
	f.writeEnvelope(t, protocol.OpIdentified, protocol.IdentifiedData{NegotiatedRPCVersion: 1})
}

// respondToRequest reads one Request envelope and replies with a
// success response carrying respData.
func (f *fakeServer) respondToRequest(t *testing.T, respData any) {
	t.Helper()
	op, raw := f.readEnvelope(t)
	if op != protocol.OpRequest {
		t.Fatalf("got op=%s, want Request", op)
	}
	req, err := protocol.DecodePayload[protocol.RequestData](op, raw)
	if err != nil {
		t.Fatalf("decode request: %v", err)
	}
	data, err := json.Marshal(respData)
	if err != nil {
		t.Fatalf("marshal response data: %v", err)
	}
	f.writeEnvelope(t, protocol.OpRequestResponse, protocol.RequestResponseData{
		RequestType:   req.RequestType,
		RequestID:     req.RequestID,
		RequestStatus: protocol.RequestStatus{Result: true, Code: protocol.RequestStatusSuccess},
		ResponseData:  data,
	})
}

func newConnectedSession(t *testing.T) (*Session, *fakeServer) {
	t.Helper()
	client, serverConn := wsfake.NewPair()
	srv := &fakeServer{conn: serverConn}

	s := New(Options{})

	done := make(chan error, 1)
	go func() { done <- s.connectOver(context.Background(), client) }()

	srv.handshake(t)
	srv.respondToRequest(t, requests.GetStudioModeEnabledResponse{StudioModeEnabled: false})
	srv.respondToRequest(t, requests.GetCurrentProgramSceneResponse{SceneName: "Scene A"})

	if err := <-done; err != nil {
		t.Fatalf("connectOver: %v", err)
	}
	return s, srv
}

func TestConnectBootstrapsDerivedState(t *testing.T) {
	testlog.Start(t)

	s, _ := newConnectedSession(t)
	defer s.Close()

	if s.State() != StateIdentified {
		t.Fatalf("got state=%s, want identified", s.State())
	}
	if s.IsStudioModeEnabled() {
		t.Fatal("expected studio mode disabled")
	}
	if got := s.CurrentProgramSceneName(); got != "Scene A" {
		t.Fatalf("got=%q want=Scene A", got)
	}
	if got := s.CurrentSceneName(); got != "Scene A" {
		t.Fatalf("got=%q want=Scene A", got)
	}
	if !s.Status.Get() {
		t.Fatal("expected status signal to report connected")
	}
}

func TestPermanentListenerUpdatesCurrentSceneOnEvent(t *testing.T) {
	testlog.Start(t)

	s, srv := newConnectedSession(t)
	defer s.Close()

	data, _ := json.Marshal(events.CurrentProgramSceneChangedData{SceneName: "Scene B"})
	srv.writeEnvelope(t, protocol.OpEvent, protocol.EventData{
		EventType: events.CurrentProgramSceneChanged,
		EventData: data,
	})

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if s.CurrentProgramSceneName() == "Scene B" {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("got=%q want=Scene B", s.CurrentProgramSceneName())
}

func TestCloseCompletesPendingRequestsWithErrDisconnected(t *testing.T) {
	testlog.Start(t)

	s, _ := newConnectedSession(t)

	resultCh := make(chan error, 1)
	go func() {
		_, err := s.Request(context.Background(), requests.GetVersion, struct{}{})
		resultCh <- err
	}()

	// Give Request a moment to register before closing.
	time.Sleep(10 * time.Millisecond)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case err := <-resultCh:
		if err == nil {
			t.Fatal("expected an error after Close")
		}
	case <-time.After(time.Second):
		t.Fatal("pending request was never completed after Close")
	}
}
