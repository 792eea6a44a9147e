// Package api holds the typed resource clients over the gateway, one per
// remote resource family. Clients shape URLs and decode payloads; they never
// validate business rules and never swallow gateway errors.
package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/holidaze/holidaze-cli/internal/gateway"
)

// Doer is the gateway surface the resource clients depend on.
type Doer interface {
	Do(ctx context.Context, req gateway.Request) (json.RawMessage, error)
}

// envelope is the remote success envelope { data: T, meta: {...} }.
type envelope[T any] struct {
	Data T              `json:"data"`
	Meta map[string]any `json:"meta"`
}

// call performs a request and unwraps the data payload. Gateway errors pass
// through unchanged; an empty body yields T's zero value.
func call[T any](ctx context.Context, d Doer, req gateway.Request) (T, error) {
	var zero T

	raw, err := d.Do(ctx, req)
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return zero, nil
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("failed to decode %s %s response: %w", req.Method, req.URL, err)
	}
	return env.Data, nil
}
