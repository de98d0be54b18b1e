// Package requests catalogs the concrete request/response discriminator
// shapes C3 (internal/correlator) needs to decode a responseData payload
// into something more useful than json.RawMessage.
//
// Every shape is registered explicitly at init() time, the same spirit
// as this codebase's schema.requirements table: no reflection-derived
// names, no implicit discovery.
package requests

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownRequestType marks a discriminator with no registered
// decoder (Lookup reports that case as ok == false). Sending a request
// with an unknown type fails fast with this error rather than reaching
// the wire.
var ErrUnknownRequestType = errors.New("requests: unknown request type")

// Decoder turns a raw responseData payload into a concrete response
// value for one request type.
type Decoder func(data json.RawMessage) (any, error)

var registry = map[string]Decoder{}

// Register associates a request type discriminator with the decoder
// for its response shape. It is meant to be called from package-level
// init() functions in catalog.go; calling it twice for the same name
// is a programming error and panics, matching the teacher's
// fail-fast-at-init convention for static registration tables.
func Register(requestType string, decode Decoder) {
	if _, exists := registry[requestType]; exists {
		panic(fmt.Sprintf("requests: duplicate registration for %q", requestType))
	}
	registry[requestType] = decode
}

// Lookup returns the registered decoder for a request type, if any.
func Lookup(requestType string) (Decoder, bool) {
	d, ok := registry[requestType]
	return d, ok
}

// RegisterTyped is a generic convenience wrapper: it registers a
// decoder that unmarshals directly into a *T and returns it as a T.
func RegisterTyped[T any](requestType string) {
	Register(requestType, func(data json.RawMessage) (any, error) {
		var v T
		if len(data) == 0 {
			return v, nil
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("requests: decode %s: %w", requestType, err)
		}
		return v, nil
	})
}
