// Package batch implements the request-batch executor (C4): submitting
// a RequestBatch and mapping the server's RequestBatchResponse back to
// a per-request result.
//
// Ownership boundary:
//   - building RequestBatchData from a caller-supplied request list
//   - the result-mapping rules in the engine design (success/failure/
//     decode-error, and the un-IDed collision fallback)
package batch
