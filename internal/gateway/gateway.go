// Package gateway is the single choke point for every outbound call to the
// remote Holidaze API. It attaches credentials, decodes the response
// envelope and classifies failures; resource clients never touch net/http
// or raw status codes directly.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/pkg/logger"
	"github.com/holidaze/holidaze-cli/pkg/telemetry"
)

// Header names the gateway injects.
const (
	HeaderAPIKey    = "X-Noroff-API-Key"
	HeaderRequestID = "X-Request-ID"
)

// SessionSource supplies the current session record. Nil means logged out.
// Injected rather than read from a global so tests control it.
type SessionSource interface {
	Current() *domain.Session
}

// Config holds gateway construction settings.
type Config struct {
	// APIKey is the deployment-configured Noroff API key. Optional: when
	// empty no key header is attached.
	APIKey string
	// Timeout bounds each call end to end. Zero means no timeout.
	Timeout time.Duration
}

// Gateway performs authenticated calls against the remote API. It does not
// retry, cache or dedupe: every call is a fresh network attempt.
type Gateway struct {
	client   *http.Client
	apiKey   string
	sessions SessionSource
}

// Request describes one outbound call. Body, when non-nil, is serialized to
// JSON. Header values supplied here are never overwritten by injection.
// Anonymous skips token injection for the two auth endpoints that must not
// see a stale session token.
type Request struct {
	Method    string
	URL       string
	Body      any
	Header    http.Header
	Anonymous bool
}

// New creates a gateway.
func New(cfg Config, sessions SessionSource) (*Gateway, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session source is required")
	}
	return &Gateway{
		client:   &http.Client{Timeout: cfg.Timeout},
		apiKey:   cfg.APIKey,
		sessions: sessions,
	}, nil
}

// Do performs the call and returns the raw JSON body. A 204 response or an
// empty body yields (nil, nil). Non-2xx statuses return *APIError; a 2xx
// body that is not valid JSON returns a decoding error wrapping
// domain.ErrDecode; transport failures are returned wrapped.
func (g *Gateway) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	httpReq, requestID, err := g.build(ctx, req)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartSpan(ctx, fmt.Sprintf("api %s", req.Method))
	defer span.End()
	httpReq = httpReq.WithContext(ctx)

	start := time.Now()
	res, err := g.client.Do(httpReq)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		logger.Warn("API call failed",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	logger.Debug("API call completed",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("url", req.URL),
		zap.Int("status", res.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if res.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	text, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := classify(res.StatusCode, text)
		telemetry.SetSpanError(ctx, apiErr)
		return nil, apiErr
	}

	if len(text) == 0 {
		return nil, nil
	}
	if !json.Valid(text) {
		return nil, fmt.Errorf("%w: status %d", domain.ErrDecode, res.StatusCode)
	}
	return json.RawMessage(text), nil
}

// build assembles the http.Request with header injection. Caller-supplied
// headers always win; injection only fills gaps.
func (g *Gateway) build(ctx context.Context, req Request) (*http.Request, string, error) {
	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}

	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	if req.Body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if g.apiKey != "" && httpReq.Header.Get(HeaderAPIKey) == "" {
		httpReq.Header.Set(HeaderAPIKey, g.apiKey)
	}
	if !req.Anonymous && httpReq.Header.Get("Authorization") == "" {
		if sess := g.sessions.Current(); sess.LoggedIn() {
			httpReq.Header.Set("Authorization", "Bearer "+sess.AccessToken)
		}
	}

	requestID := httpReq.Header.Get(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
		httpReq.Header.Set(HeaderRequestID, requestID)
	}

	return httpReq, requestID, nil
}
