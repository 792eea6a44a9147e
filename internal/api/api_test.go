package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/gateway"
)

// fakeDoer records the requests it sees and plays back canned responses in
// order. A nil response entry yields (nil, nil), the gateway's no-content
// result.
type fakeDoer struct {
	t         *testing.T
	requests  []gateway.Request
	responses []json.RawMessage
	errs      []error
}

func (f *fakeDoer) Do(_ context.Context, req gateway.Request) (json.RawMessage, error) {
	i := len(f.requests)
	f.requests = append(f.requests, req)
	if i >= len(f.responses) {
		f.t.Fatalf("unexpected request %d: %s %s", i, req.Method, req.URL)
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return f.responses[i], err
}

// fixedSessions is a static session source.
type fixedSessions struct {
	sess *domain.Session
}

func (s *fixedSessions) Current() *domain.Session {
	return s.sess
}
