package eventbus

import (
	"context"
	"errors"
	"sync"

	"github.com/danmuck/obswire/internal/events"
	"github.com/danmuck/obswire/internal/logging"
	"github.com/danmuck/obswire/internal/protocol"
)

// ErrSubscriberLagged is sent as a final Delivery, best-effort, to a
// subscriber whose channel was still full when the next event for its
// discriminator arrived. The bus never blocks its dispatch loop for a
// slow subscriber.
var ErrSubscriberLagged = errors.New("eventbus: subscriber lagged and was dropped")

// Delivery carries one event to a subscriber: either a decoded payload
// or a decode error. A decode failure for one subscriber never affects
// others.
type Delivery struct {
	EventType string
	Payload   any
	Err       error
}

type subscriber struct {
	id    uint64
	ch    chan Delivery
	types map[string]bool // empty/nil means "all types" is not used; Multi always lists explicit types
}

// Bus dispatches decoded Event payloads to subscribers. One Bus serves
// one session.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]*subscriber
}

func New() *Bus {
	return &Bus{subs: make(map[uint64]*subscriber)}
}

// Dispatch decodes one Event payload and delivers it to every
// subscriber registered for its discriminator.
func (b *Bus) Dispatch(ev protocol.EventData) {
	var delivery Delivery
	delivery.EventType = ev.EventType
	decode, ok := events.Lookup(ev.EventType)
	if !ok {
		delivery.Err = events.ErrUnknownEventType
	} else {
		payload, err := decode(ev.EventData)
		delivery.Payload, delivery.Err = payload, err
	}

	// The send to each subscriber's channel happens while still holding
	// b.mu, so a concurrent remove/dropLaggingSubscriber can never close
	// a channel this loop is mid-send on.
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, s := range b.subs {
		if !s.types[ev.EventType] {
			continue
		}
		select {
		case s.ch <- delivery:
		default:
			b.dropLaggingSubscriberLocked(id, s)
		}
	}
}

// dropLaggingSubscriberLocked removes and closes a subscriber whose
// channel was full. Callers must hold b.mu.
func (b *Bus) dropLaggingSubscriberLocked(id uint64, s *subscriber) {
	logging.Warnf("eventbus: subscriber id=%d lagged, dropping", s.id)
	delete(b.subs, id)

	select {
	case s.ch <- Delivery{Err: ErrSubscriberLagged}:
	default:
	}
	close(s.ch)
}

// First returns a channel that delivers at most one matching event,
// closing afterward (or on context cancellation). The returned func
// unsubscribes early.
func (b *Bus) First(ctx context.Context, discriminator string) (<-chan Delivery, func()) {
	out := make(chan Delivery, 1)
	s := b.add(discriminator)
	unsub := func() { b.remove(s.id) }

	go func() {
		select {
		case d, ok := <-s.ch:
			if ok {
				out <- d
			}
		case <-ctx.Done():
		}
		unsub()
		close(out)
	}()
	return out, unsub
}

// All returns a channel that delivers every matching event until the
// returned unsubscribe func is called or the subscriber is dropped for
// lagging (see Dispatch); either way the channel is closed.
func (b *Bus) All(discriminator string) (<-chan Delivery, func()) {
	s := b.add(discriminator)
	return s.ch, func() { b.remove(s.id) }
}

// Multi merges All subscriptions over several discriminators into one
// channel.
func (b *Bus) Multi(discriminators ...string) (<-chan Delivery, func()) {
	s := b.addMulti(discriminators)
	return s.ch, func() { b.remove(s.id) }
}

func (b *Bus) add(discriminator string) *subscriber {
	return b.addMulti([]string{discriminator})
}

func (b *Bus) addMulti(discriminators []string) *subscriber {
	types := make(map[string]bool, len(discriminators))
	for _, d := range discriminators {
		types[d] = true
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	s := &subscriber{id: b.nextID, ch: make(chan Delivery, 1), types: types}
	b.subs[s.id] = s
	return s
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	s, ok := b.subs[id]
	if ok {
		delete(b.subs, id)
	}
	b.mu.Unlock()
	if ok {
		close(s.ch)
	}
}
