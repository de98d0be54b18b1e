package protocol

import "encoding/json"

// ExecutionType is the server-side policy for executing a request batch.
// The engine never interprets these values; it forwards them as-is.
type ExecutionType string

const (
	ExecutionSerialRealtime ExecutionType = "serialRealtime"
	ExecutionSerialFrame    ExecutionType = "serialFrame"
	ExecutionParallel       ExecutionType = "parallel"
)

// AuthenticationSpec is the challenge/salt pair a Hello carries when the
// server requires authentication.
type AuthenticationSpec struct {
	Challenge string `json:"challenge"`
	Salt      string `json:"salt"`
}

// HelloData is the opcode-0 payload: the server's greeting.
type HelloData struct {
	OBSWebSocketVersion string              `json:"obsWebSocketVersion"`
	RPCVersion          int                 `json:"rpcVersion"`
	Authentication      *AuthenticationSpec `json:"authentication,omitempty"`
}

// IdentifyData is the opcode-1 payload: the client's handshake reply.
type IdentifyData struct {
	RPCVersion         int    `json:"rpcVersion"`
	Authentication     string `json:"authentication,omitempty"`
	EventSubscriptions *int   `json:"eventSubscriptions,omitempty"`
}

// IdentifiedData is the opcode-2 payload: the server's handshake ack.
type IdentifiedData struct {
	NegotiatedRPCVersion int `json:"negotiatedRpcVersion"`
}

// ReidentifyData is the opcode-3 payload. A nil EventSubscriptions means
// "all" (the non-high-volume union).
type ReidentifyData struct {
	EventSubscriptions *int `json:"eventSubscriptions,omitempty"`
}

// EventData is the opcode-5 payload: one server-initiated event.
type EventData struct {
	EventType   string          `json:"eventType"`
	EventIntent int             `json:"eventIntent"`
	EventData   json.RawMessage `json:"eventData,omitempty"`
}

// RequestData is the opcode-6 payload: one client-initiated request.
type RequestData struct {
	RequestType string          `json:"requestType"`
	RequestID   string          `json:"requestId"`
	RequestData json.RawMessage `json:"requestData,omitempty"`
}

// RequestStatus is the {result, code, comment} status block carried by
// both single and batched responses. 100 is success; every other code is
// a failure with a category hint.
type RequestStatus struct {
	Result  bool   `json:"result"`
	Code    int    `json:"code"`
	Comment string `json:"comment,omitempty"`
}

const RequestStatusSuccess = 100

// RequestResponseData is the opcode-7 payload: the server's reply to one
// Request.
type RequestResponseData struct {
	RequestType   string          `json:"requestType"`
	RequestID     string          `json:"requestId"`
	RequestStatus RequestStatus   `json:"requestStatus"`
	ResponseData  json.RawMessage `json:"responseData,omitempty"`
}

// BatchRequestItem is one sub-request within a RequestBatch. RequestID is
// optional on the wire; see engine design §4.4/§11 on the collision risk
// of omitting it.
type BatchRequestItem struct {
	RequestType string          `json:"requestType"`
	RequestID   string          `json:"requestId,omitempty"`
	RequestData json.RawMessage `json:"requestData,omitempty"`
}

// RequestBatchData is the opcode-8 payload. The outer batch ID is named
// "requestId" on the wire, matching the server's field-name reuse.
type RequestBatchData struct {
	RequestID     string             `json:"requestId"`
	HaltOnFailure bool               `json:"haltOnFailure,omitempty"`
	ExecutionType ExecutionType      `json:"executionType,omitempty"`
	Requests      []BatchRequestItem `json:"requests"`
}

// BatchResponseItem is one element of a RequestBatchResponse's results,
// the same shape as RequestResponseData minus the outer opcode framing.
type BatchResponseItem struct {
	RequestType   string          `json:"requestType"`
	RequestID     string          `json:"requestId,omitempty"`
	RequestStatus RequestStatus   `json:"requestStatus"`
	ResponseData  json.RawMessage `json:"responseData,omitempty"`
}

// RequestBatchResponseData is the opcode-9 payload.
type RequestBatchResponseData struct {
	RequestID string              `json:"requestId"`
	Results   []BatchResponseItem `json:"results"`
}
