package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/danmuck/obswire/internal/correlator"
	"github.com/danmuck/obswire/internal/logging"
	"github.com/danmuck/obswire/internal/protocol"
	"github.com/danmuck/obswire/internal/requests"
)

// SendFunc transmits an encoded opcode/payload pair, the same contract
// internal/correlator and internal/handshake use.
type SendFunc func(op protocol.Opcode, payload any) error

// Result is the outcome of one sub-request within a batch: either a
// decoded typed response, a *correlator.RequestFailedError, or a
// *correlator.ResponseDecodeError.
type Result any

// Request is one sub-request to submit as part of a batch. ID is
// optional; when empty the server omits requestId on the matching
// result, and Execute falls back to keying that entry by RequestType
// (see the collision note on Execute).
type Request struct {
	Type string
	ID   string
	Data any
}

type pendingBatch struct {
	done    chan struct{}
	items   []Request
	results map[string]Result
	err     error
}

// Executor submits request batches and correlates their responses by
// batch ID, the same pending-table shape internal/correlator uses for
// individual requests.
type Executor struct {
	mu      sync.Mutex
	pending map[string]*pendingBatch
	send    SendFunc
}

func New(send SendFunc) *Executor {
	return &Executor{pending: make(map[string]*pendingBatch), send: send}
}

// Execute submits a batch and blocks until the server's
// RequestBatchResponse arrives or ctx is done. The execution type and
// haltOnFailure flag are forwarded to the server uninterpreted.
//
// Results are keyed by sub-request ID. A sub-request sent without an ID
// is keyed by its request type instead, so when several un-IDed
// sub-requests share a type, later results overwrite earlier ones in
// the returned map; supply IDs when that matters.
func (e *Executor) Execute(ctx context.Context, execType protocol.ExecutionType, haltOnFailure bool, reqs []Request) (map[string]Result, error) {
	items := make([]protocol.BatchRequestItem, 0, len(reqs))
	for _, r := range reqs {
		raw, err := json.Marshal(r.Data)
		if err != nil {
			return nil, fmt.Errorf("batch: marshal request data for %s: %w", r.Type, err)
		}
		items = append(items, protocol.BatchRequestItem{
			RequestType: r.Type,
			RequestID:   r.ID,
			RequestData: raw,
		})
	}

	batchID := uuid.NewString()
	pb := &pendingBatch{done: make(chan struct{}), items: reqs}

	e.mu.Lock()
	e.pending[batchID] = pb
	e.mu.Unlock()

	payload := protocol.RequestBatchData{
		RequestID:     batchID,
		HaltOnFailure: haltOnFailure,
		ExecutionType: execType,
		Requests:      items,
	}
	if err := e.send(protocol.OpRequestBatch, payload); err != nil {
		e.mu.Lock()
		delete(e.pending, batchID)
		e.mu.Unlock()
		return nil, fmt.Errorf("batch: sending batch: %w", err)
	}

	select {
	case <-pb.done:
		return pb.results, pb.err
	case <-ctx.Done():
		e.mu.Lock()
		delete(e.pending, batchID)
		e.mu.Unlock()
		return nil, ctx.Err()
	}
}

// HandleResponse completes the pending batch matching resp.RequestID,
// mapping each sub-result according to the engine design's rules.
func (e *Executor) HandleResponse(resp protocol.RequestBatchResponseData) {
	e.mu.Lock()
	pb, ok := e.pending[resp.RequestID]
	if ok {
		delete(e.pending, resp.RequestID)
	}
	e.mu.Unlock()

	if !ok {
		logging.Warnf("batch: response for unknown batch id=%s", resp.RequestID)
		return
	}

	// RequestType is only present on sub-requests we submitted, not on
	// the wire result; recover it by position, matching O3 (results are
	// ordered to match the request list).
	results := make(map[string]Result, len(resp.Results))
	for i, item := range resp.Results {
		key := item.RequestID
		var requestType string
		if i < len(pb.items) {
			requestType = pb.items[i].Type
		} else {
			requestType = item.RequestType
		}
		if key == "" {
			key = requestType
		}
		results[key] = decodeResult(requestType, item)
	}
	pb.results = results
	close(pb.done)
}

func decodeResult(requestType string, item protocol.BatchResponseItem) Result {
	if item.RequestStatus.Code != protocol.RequestStatusSuccess {
		return &correlator.RequestFailedError{RequestType: requestType, Status: item.RequestStatus}
	}
	decode, ok := requests.Lookup(requestType)
	if !ok {
		return &correlator.ResponseDecodeError{RequestType: requestType, Err: requests.ErrUnknownRequestType}
	}
	value, err := decode(item.ResponseData)
	if err != nil {
		return &correlator.ResponseDecodeError{RequestType: requestType, Err: err}
	}
	return value
}
