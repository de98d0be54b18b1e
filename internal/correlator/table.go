package correlator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/danmuck/obswire/internal/logging"
	"github.com/danmuck/obswire/internal/protocol"
	"github.com/danmuck/obswire/internal/requests"
)

// SendFunc transmits an encoded opcode/payload pair over the
// connection, the same contract internal/handshake uses.
type SendFunc func(op protocol.Opcode, payload any) error

type entry struct {
	requestType string
	pending     *Pending
}

// Correlator owns the pending-request table for one session. It is
// safe for concurrent use; Send may be called from any goroutine while
// HandleResponse is driven from the session's single dispatch loop.
type Correlator struct {
	mu      sync.Mutex
	pending map[string]entry
	send    SendFunc
}

func New(send SendFunc) *Correlator {
	return &Correlator{
		pending: make(map[string]entry),
		send:    send,
	}
}

// Send assigns a fresh request ID, registers a pending entry, and
// transmits the request. It fails fast if requestType has no
// registered response decoder.
func (c *Correlator) Send(ctx context.Context, requestType string, data any) (*Pending, error) {
	if _, ok := requests.Lookup(requestType); !ok {
		return nil, fmt.Errorf("correlator: send %s: %w", requestType, requests.ErrUnknownRequestType)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("correlator: marshal request data for %s: %w", requestType, err)
	}

	id := uuid.NewString()
	p := &Pending{id: id, done: make(chan struct{}), cancel: c.remove}

	c.mu.Lock()
	c.pending[id] = entry{requestType: requestType, pending: p}
	c.mu.Unlock()

	req := protocol.RequestData{RequestType: requestType, RequestID: id, RequestData: raw}
	if err := c.send(protocol.OpRequest, req); err != nil {
		c.remove(id)
		return nil, fmt.Errorf("correlator: sending request %s: %w", requestType, err)
	}
	return p, nil
}

// HandleResponse completes the pending entry matching resp.RequestID,
// decoding responseData according to the request type's registered
// shape. A response for an unknown or already-cancelled ID is logged
// and dropped.
func (c *Correlator) HandleResponse(resp protocol.RequestResponseData) {
	c.mu.Lock()
	e, ok := c.pending[resp.RequestID]
	if ok {
		delete(c.pending, resp.RequestID)
	}
	c.mu.Unlock()

	if !ok {
		logging.Warnf("correlator: response for unknown request id=%s type=%s", resp.RequestID, resp.RequestType)
		return
	}

	if !resp.RequestStatus.Result {
		e.pending.complete(nil, &RequestFailedError{RequestType: e.requestType, Status: resp.RequestStatus})
		return
	}

	decode, ok := requests.Lookup(e.requestType)
	if !ok {
		e.pending.complete(nil, fmt.Errorf("correlator: %w: %s", requests.ErrUnknownRequestType, e.requestType))
		return
	}
	result, err := decode(resp.ResponseData)
	if err != nil {
		e.pending.complete(nil, &ResponseDecodeError{RequestType: e.requestType, Err: err})
		return
	}
	e.pending.complete(result, nil)
}

// Reidentify transmits a Reidentify frame. It is fire-and-forget: there
// is no correlation, since the server does not ack it by request ID.
func (c *Correlator) Reidentify(mask protocol.EventSubscription) error {
	return c.send(protocol.OpReidentify, protocol.ReidentifyData{EventSubscriptions: mask.IntPtr()})
}

// Disconnect completes every pending entry with ErrDisconnected and
// empties the table. The session calls this before closing the
// transport.
func (c *Correlator) Disconnect() {
	c.mu.Lock()
	entries := c.pending
	c.pending = make(map[string]entry)
	c.mu.Unlock()

	for _, e := range entries {
		e.pending.complete(nil, ErrDisconnected)
	}
}

func (c *Correlator) remove(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}
