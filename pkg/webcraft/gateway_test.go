package webcraft

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// countBase makes the gateway count the transports it creates
func countBase(g *gateway) *int32 {
	var created int32
	g.newBase = func() *http.Transport {
		atomic.AddInt32(&created, 1)
		return http.DefaultTransport.(*http.Transport).Clone()
	}
	return &created
}

func TestOpenIsIdempotent(t *testing.T) {
	g := newGateway("http://localhost", nil)
	created := countBase(g)

	first := g.open()
	second := g.open()
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(created))
}

func TestConcurrentOpenCreatesOneTransport(t *testing.T) {
	g := newGateway("http://localhost", nil)
	created := countBase(g)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.open()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(created))
}

func TestCloseAndReopen(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"response":"pong"}`)
	})

	client := New(srv.URL)
	created := countBase(client.gw)

	// close without open is fine
	require.NoError(t, client.Close())
	assert.Nil(t, client.gw.session)

	_, err := client.Ping.Ping(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, client.gw.session)

	require.NoError(t, client.Close())
	assert.Nil(t, client.gw.session)
	require.NoError(t, client.Close())

	// a closed client opens a new transport on the next request
	pong, err := client.Ping.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pong", pong.Response)
	assert.Equal(t, int32(2), atomic.LoadInt32(created))
}

type countingTransport struct {
	requests int32
	closed   int32
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt32(&c.requests, 1)
	return http.DefaultTransport.RoundTrip(req)
}

func (c *countingTransport) CloseIdleConnections() {
	atomic.AddInt32(&c.closed, 1)
}

func TestExternalClientIsNeverClosed(t *testing.T) {
	var userAgent string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		writeJSON(w, 200, `{"response":"pong"}`)
	})

	transport := &countingTransport{}
	external := &http.Client{Transport: transport}

	client := New(srv.URL, WithHTTPClient(external), WithUserAgent("test-agent"))
	err := client.Run(context.Background(), func(c *Client) error {
		_, err := c.Ping.Ping(context.Background())
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&transport.requests))
	assert.Equal(t, int32(0), atomic.LoadInt32(&transport.closed))
	assert.Equal(t, "test-agent", userAgent)
	// the provided client stays untouched
	assert.Same(t, transport, external.Transport)

	// the session is kept, closing only applies to owned transports
	assert.NotNil(t, client.gw.session)
}

func TestRunSkipsCanceledContext(t *testing.T) {
	client := New("http://localhost")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := client.Run(ctx, func(c *Client) error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestAuthenticate(t *testing.T) {
	var authHeader string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/authenticate":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			req := AuthenticateRequest{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Username != "alice" || req.Password != "secret" {
				writeJSON(w, 401, `{"status":401,"code":"UNAUTHORIZED","message":"Invalid credentials"}`)
				return
			}
			writeJSON(w, 200, `"abc123"`)
		case "/api/ping":
			authHeader = r.Header.Get("Authorization")
			writeJSON(w, 200, `{"response":"pong"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	client := New(srv.URL + "/")
	defer client.Close()
	ctx := context.Background()

	assert.False(t, client.HasCredentials())
	_, err := client.Ping.Ping(ctx)
	require.NoError(t, err)
	assert.Empty(t, authHeader)

	token, err := client.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.Equal(t, "abc123", client.Token())

	_, err = client.Ping.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", authHeader)

	// the token survives a new transport
	require.NoError(t, client.Close())
	_, err = client.Ping.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", authHeader)

	_, err = client.Authenticate(ctx, "alice", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.ErrorIs(t, err, ErrUnauthorized)
	// a failed login keeps the previous token
	assert.Equal(t, "abc123", client.Token())
}

func TestAuthenticateFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message from body", 403, `{"message":"Account disabled"}`, "Account disabled"},
		{"json without message", 401, `{}`, "Unknown error"},
		{"body is not json", 500, `Internal Server Error`, "authentication failed with status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			client := New(srv.URL)
			defer client.Close()
			_, err := client.Authenticate(context.Background(), "alice", "secret")

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Empty(t, client.Token())
		})
	}
}

func TestAuthenticateValidatesBeforeSending(t *testing.T) {
	var requests int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	})

	client := New(srv.URL)
	_, err := client.Authenticate(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestWithToken(t *testing.T) {
	var authHeader string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		writeJSON(w, 200, `{"online":3,"offline":10}`)
	})

	client := New(srv.URL, WithToken("persisted"))
	count, err := client.Players.GetCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer persisted", authHeader)
	assert.Equal(t, 3, count.Online)
	assert.Equal(t, 10, count.Offline)
}

func TestErrorResponses(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/players/Herobrine":
			writeJSON(w, 404, `{"status":404,"code":"NOT_FOUND","message":"player not found"}`)
		case "/api/admins":
			writeJSON(w, 401, `{"status":401,"code":"UNAUTHORIZED","message":"Missing token"}`)
		case "/api/server":
			w.WriteHeader(502)
			io.WriteString(w, "<html>bad gateway</html>")
		case "/api/plugins":
			writeJSON(w, 200, `{"plugins": [`)
		}
	})

	client := New(srv.URL)
	defer client.Close()
	ctx := context.Background()

	_, err := client.Players.GetPlayerInfo(ctx, "Herobrine")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "player not found", apiErr.Message)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "player not found (status 404)", apiErr.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, errors.Is(err, ErrUnauthorized))

	_, err = client.Admin.GetAdmins(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = client.Server.GetServerInfo(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "API request failed with status 502", apiErr.Message)
	assert.Equal(t, 502, apiErr.StatusCode)

	_, err = client.Plugins.GetAllPlugins(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, 200, apiErr.StatusCode)
}

func TestMalformedRecord(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		// valid JSON, wrong shape
		writeJSON(w, 200, `{"online":"three"}`)
	})

	client := New(srv.URL)
	defer client.Close()

	_, err := client.Players.GetCount(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPostResponses(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/chat/broadcast/all":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			io.WriteString(w, "ok")
		case "/api/worlds/world/save":
			w.WriteHeader(http.StatusNoContent)
		case "/api/players/Steve/heal":
			w.WriteHeader(http.StatusAccepted)
			io.WriteString(w, "not json")
		case "/api/players/Steve/kill":
			writeJSON(w, 200, `{"status":200,"code":"OK","message":"Player killed"}`)
		}
	})

	client := New(srv.URL)
	defer client.Close()
	ctx := context.Background()

	raw, err := client.gw.postJSON(ctx, "/api/chat/broadcast/all", BroadcastRequest{Message: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"response":"ok"}`, string(raw))

	raw, err = client.gw.postJSON(ctx, "/api/worlds/world/save", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))

	res, err := client.Worlds.SaveWorld(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, SuccessResponse{}, *res)

	res, err = client.Players.HealPlayer(ctx, "Steve")
	require.NoError(t, err)
	assert.Equal(t, SuccessResponse{}, *res)

	res, err = client.Players.KillPlayer(ctx, "Steve")
	require.NoError(t, err)
	assert.Equal(t, "Player killed", res.Message)
	assert.Equal(t, "OK", res.Code)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := New(url)
	defer client.Close()

	_, err := client.Ping.Ping(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, ErrTransport)
	assert.False(t, apiErr.HasStatus())
	assert.Equal(t, 0, apiErr.StatusCode)
}

func TestInvalidRequestIsNotSent(t *testing.T) {
	var requests int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	})

	client := New(srv.URL)
	defer client.Close()
	ctx := context.Background()

	_, err := client.Chat.BroadcastAll(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.Banlist.BanIP(ctx, BanIPRequest{Reason: "spam"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.Worlds.SetBlocks(ctx, "world", []SetBlockRequest{{X: 1}})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}
