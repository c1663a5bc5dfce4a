package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
)

// requester is the part of Transport the resource services depend on.
type requester interface {
	Request(ctx context.Context, method string, params Params, opts ...RequestOption) (json.RawMessage, error)
}

// optionSetter is implemented by the option structs.
type optionSetter interface {
	apply(Params)
}

// buildParams merges the positional parameters of an operation with its
// options and drops absent values.
func buildParams(base Params, opts optionSetter) Params {
	if opts != nil {
		opts.apply(base)
	}
	return Sanitize(base)
}

// call issues method through r and decodes the response into T.
// Errors from r are returned unchanged.
func call[T any](ctx context.Context, r requester, method string, params Params) (*T, error) {
	raw, err := r.Request(ctx, method, params)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse %s response: %w", method, err)
	}
	return &out, nil
}
