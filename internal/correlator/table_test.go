package correlator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/danmuck/obswire/internal/protocol"
	"github.com/danmuck/obswire/internal/requests"
	"github.com/danmuck/obswire/internal/testutil/testlog"
)

func TestSendThenHandleResponseResolvesPending(t *testing.T) {
	testlog.Start(t)

	var sent protocol.RequestData
	c := New(func(op protocol.Opcode, payload any) error {
		sent = payload.(protocol.RequestData)
		return nil
	})

	p, err := c.Send(context.Background(), requests.GetVersion, struct{}{})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	respData, _ := json.Marshal(requests.GetVersionResponse{ObsVersion: "30.0.0", RPCVersion: 1})
	c.HandleResponse(protocol.RequestResponseData{
		RequestType:   requests.GetVersion,
		RequestID:     sent.RequestID,
		RequestStatus: protocol.RequestStatus{Result: true, Code: protocol.RequestStatusSuccess},
		ResponseData:  respData,
	})

	result, err := p.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	resp, ok := result.(requests.GetVersionResponse)
	if !ok || resp.ObsVersion != "30.0.0" {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestHandleResponseSurfacesRequestFailedError(t *testing.T) {
	testlog.Start(t)

	var sent protocol.RequestData
	c := New(func(op protocol.Opcode, payload any) error {
		sent = payload.(protocol.RequestData)
		return nil
	})

	p, err := c.Send(context.Background(), requests.SetCurrentProgramScene, struct{}{})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	c.HandleResponse(protocol.RequestResponseData{
		RequestType:   requests.SetCurrentProgramScene,
		RequestID:     sent.RequestID,
		RequestStatus: protocol.RequestStatus{Result: false, Code: 604, Comment: "no such scene"},
	})

	_, err = p.Wait(context.Background())
	var failed *RequestFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("got err=%v, want *RequestFailedError", err)
	}
	if failed.Status.Code != 604 {
		t.Fatalf("got code=%d want=604", failed.Status.Code)
	}
}

func TestSendFailsFastOnUnknownRequestType(t *testing.T) {
	testlog.Start(t)

	c := New(func(op protocol.Opcode, payload any) error { return nil })
	_, err := c.Send(context.Background(), "NotARealRequest", struct{}{})
	if !errors.Is(err, requests.ErrUnknownRequestType) {
		t.Fatalf("got err=%v, want ErrUnknownRequestType", err)
	}
}

func TestCancelDiscardsLateResponse(t *testing.T) {
	testlog.Start(t)

	var sent protocol.RequestData
	c := New(func(op protocol.Opcode, payload any) error {
		sent = payload.(protocol.RequestData)
		return nil
	})

	p, err := c.Send(context.Background(), requests.GetVersion, struct{}{})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	p.Cancel()

	// A response for a cancelled ID must not panic and must be dropped.
	c.HandleResponse(protocol.RequestResponseData{
		RequestType:   requests.GetVersion,
		RequestID:     sent.RequestID,
		RequestStatus: protocol.RequestStatus{Result: true, Code: protocol.RequestStatusSuccess},
	})
}

func TestDisconnectCompletesAllPendingWithErrDisconnected(t *testing.T) {
	testlog.Start(t)

	c := New(func(op protocol.Opcode, payload any) error { return nil })
	p1, _ := c.Send(context.Background(), requests.GetVersion, struct{}{})
	p2, _ := c.Send(context.Background(), requests.GetStats, struct{}{})

	c.Disconnect()

	for _, p := range []*Pending{p1, p2} {
		if _, err := p.Wait(context.Background()); !errors.Is(err, ErrDisconnected) {
			t.Fatalf("got err=%v, want ErrDisconnected", err)
		}
	}
}
