package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestEnvelopeRoundTripHello(t *testing.T) {
	want := HelloData{
		OBSWebSocketVersion: "5.0.0",
		RPCVersion:          1,
		Authentication: &AuthenticationSpec{
			Challenge: "chal",
			Salt:      "salt",
		},
	}
	raw, err := Encode(OpHello, want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	op, d, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if op != OpHello {
		t.Fatalf("got op=%s want=%s", op, OpHello)
	}
	got, err := DecodePayload[HelloData](op, d)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if got.OBSWebSocketVersion != want.OBSWebSocketVersion || got.RPCVersion != want.RPCVersion {
		t.Fatalf("got=%+v want=%+v", got, want)
	}
	if got.Authentication == nil || *got.Authentication != *want.Authentication {
		t.Fatalf("authentication mismatch: got=%+v want=%+v", got.Authentication, want.Authentication)
	}
}

func TestEnvelopeFieldNamesMatchWireContract(t *testing.T) {
	raw, err := Encode(OpRequest, RequestData{
		RequestType: "GetVersion",
		RequestID:   "r1",
		RequestData: json.RawMessage(`{"x":1}`),
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal outer: %v", err)
	}
	if _, ok := generic["op"]; !ok {
		t.Fatalf("missing op field")
	}
	var d map[string]json.RawMessage
	if err := json.Unmarshal(generic["d"], &d); err != nil {
		t.Fatalf("unmarshal d: %v", err)
	}
	for _, field := range []string{"requestType", "requestId", "requestData"} {
		if _, ok := d[field]; !ok {
			t.Fatalf("missing wire field %q in %s", field, string(raw))
		}
	}
}

func TestDecodeRejectsUnknownOpcode(t *testing.T) {
	_, _, err := Decode([]byte(`{"op":99,"d":{}}`))
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Fatalf("expected ErrUnknownOpcode, got %v", err)
	}
}

func TestDecodeRejectsMissingDataField(t *testing.T) {
	_, _, err := Decode([]byte(`{"op":0}`))
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, _, err := Decode([]byte(`not json`))
	if !errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("expected ErrMalformedEnvelope, got %v", err)
	}
}

func TestRequestBatchIDFieldIsRenamedOnWire(t *testing.T) {
	raw, err := Encode(OpRequestBatch, RequestBatchData{
		RequestID:     "batch-1",
		ExecutionType: ExecutionSerialRealtime,
		Requests: []BatchRequestItem{
			{RequestType: "GetVersion", RequestID: "a"},
		},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"requestId":"batch-1"`)) {
		t.Fatalf("expected batch id renamed to requestId on wire: %s", string(raw))
	}
}
