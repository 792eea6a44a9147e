package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holidaze/holidaze-cli/internal/domain"
)

// stubSessions is a fixed SessionSource for tests.
type stubSessions struct {
	sess *domain.Session
}

func (s *stubSessions) Current() *domain.Session {
	return s.sess
}

func newTestGateway(t *testing.T, sess *domain.Session, apiKey string) *Gateway {
	t.Helper()
	gw, err := New(Config{APIKey: apiKey, Timeout: 5 * time.Second}, &stubSessions{sess: sess})
	require.NoError(t, err)
	return gw
}

func TestGateway_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	gw := newTestGateway(t, nil, "")
	raw, err := gw.Do(context.Background(), Request{Method: http.MethodDelete, URL: srv.URL})
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestGateway_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gw := newTestGateway(t, nil, "")
	raw, err := gw.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestGateway_APIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"message":"Not found"}],"status":"Not Found","statusCode":404}`))
	}))
	defer srv.Close()

	gw := newTestGateway(t, nil, "")
	_, err := gw.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Not found", apiErr.Message)
	assert.Equal(t, "Not found", apiErr.Error())
}

func TestGateway_APIErrorFallback(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"undecodable body", "<html>oops</html>"},
		{"decodable body without message", `{"errors":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			gw := newTestGateway(t, nil, "")
			_, err := gw.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "API error 500", apiErr.Message)
		})
	}
}

func TestGateway_DecodeErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	gw := newTestGateway(t, nil, "")
	_, err := gw.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestGateway_HeaderInjection(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	sess := &domain.Session{Name: "ola", AccessToken: "tok-123"}
	gw := newTestGateway(t, sess, "key-abc")

	_, err := gw.Do(context.Background(), Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Body:   map[string]string{"hello": "world"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.Equal(t, "key-abc", got.Get(HeaderAPIKey))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.NotEmpty(t, got.Get(HeaderRequestID))
}

func TestGateway_CallerHeadersWin(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	sess := &domain.Session{Name: "ola", AccessToken: "stored-token"}
	gw := newTestGateway(t, sess, "key-abc")

	header := http.Header{}
	header.Set("Authorization", "Bearer caller-token")
	header.Set(HeaderAPIKey, "caller-key")

	_, err := gw.Do(context.Background(), Request{
		Method: http.MethodGet,
		URL:    srv.URL,
		Header: header,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer caller-token", got.Get("Authorization"))
	assert.Equal(t, "caller-key", got.Get(HeaderAPIKey))
}

func TestGateway_AnonymousSkipsToken(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	sess := &domain.Session{Name: "ola", AccessToken: "stale-token"}
	gw := newTestGateway(t, sess, "key-abc")

	_, err := gw.Do(context.Background(), Request{
		Method:    http.MethodPost,
		URL:       srv.URL,
		Anonymous: true,
	})
	require.NoError(t, err)

	assert.Empty(t, got.Get("Authorization"))
	assert.Equal(t, "key-abc", got.Get(HeaderAPIKey))
}

func TestGateway_LoggedOutSessionGetsNoToken(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	// a record without an access token is logged out no matter its fields
	gw := newTestGateway(t, &domain.Session{Name: "ola", VenueManager: true}, "")

	_, err := gw.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestGateway_TransportFailure(t *testing.T) {
	gw := newTestGateway(t, nil, "")

	_, err := gw.Do(context.Background(), Request{
		Method: http.MethodGet,
		URL:    "http://127.0.0.1:1", // nothing listens here
	})
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failure must not classify as API error")
}

func TestGateway_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	gw := newTestGateway(t, nil, "")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := gw.Do(ctx, Request{Method: http.MethodGet, URL: srv.URL})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGateway_ReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"v1"},"meta":{}}`))
	}))
	defer srv.Close()

	gw := newTestGateway(t, nil, "")
	raw, err := gw.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)

	var env struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "v1", env.Data.ID)
}
