// Package correlator implements the request/response correlation table
// (C3): every outgoing Request gets a fresh ID, and the matching
// RequestResponse is routed back to whichever caller is waiting on it.
//
// Ownership boundary:
//   - the pending-request table and its mutex
//   - decoding responseData into the type a request's discriminator
//     declares, via internal/requests
//   - the *Pending future type callers block on
package correlator
