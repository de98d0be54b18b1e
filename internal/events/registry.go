// Package events catalogs the concrete event discriminator shapes C5
// (internal/eventbus) needs to decode an eventData payload.
//
// The registration mechanism mirrors internal/requests: explicit
// Register calls at init() time, no reflection-derived names.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEventType marks an event type with no registered decoder
// (Lookup reports that case as ok == false); internal/eventbus delivers
// it as the Delivery error for such events.
var ErrUnknownEventType = errors.New("events: unknown event type")

// Decoder turns a raw eventData payload into a concrete event value.
type Decoder func(data json.RawMessage) (any, error)

var registry = map[string]Decoder{}

func Register(eventType string, decode Decoder) {
	if _, exists := registry[eventType]; exists {
		panic(fmt.Sprintf("events: duplicate registration for %q", eventType))
	}
	registry[eventType] = decode
}

func Lookup(eventType string) (Decoder, bool) {
	d, ok := registry[eventType]
	return d, ok
}

func RegisterTyped[T any](eventType string) {
	Register(eventType, func(data json.RawMessage) (any, error) {
		var v T
		if len(data) == 0 {
			return v, nil
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("events: decode %s: %w", eventType, err)
		}
		return v, nil
	})
}
