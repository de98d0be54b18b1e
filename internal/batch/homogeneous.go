package batch

import (
	"context"

	"github.com/danmuck/obswire/internal/protocol"
)

// ExecuteHomogeneous submits a batch of requests that all share one
// request type and decodes every success into Resp, returning errors
// in a parallel map rather than forcing callers to type-switch Result.
func ExecuteHomogeneous[Resp any](e *Executor, ctx context.Context, requestType string, execType protocol.ExecutionType, haltOnFailure bool, items map[string]any) (map[string]Resp, map[string]error) {
	reqs := make([]Request, 0, len(items))
	for id, data := range items {
		reqs = append(reqs, Request{Type: requestType, ID: id, Data: data})
	}

	responses := make(map[string]Resp, len(items))
	errs := make(map[string]error)

	results, err := e.Execute(ctx, execType, haltOnFailure, reqs)
	if err != nil {
		for id := range items {
			errs[id] = err
		}
		return responses, errs
	}

	for id, result := range results {
		if resp, ok := result.(Resp); ok {
			responses[id] = resp
			continue
		}
		if resultErr, ok := result.(error); ok {
			errs[id] = resultErr
			continue
		}
	}
	return responses, errs
}
