package ownhttp

import (
	"net/http"
	"sync"
)

// UserAgent is the default User-Agent of clients created by this package
const UserAgent = "webcraft (https://github.com/minepkg/webcraft)"

// New returns a new http.Client with the AddHeaderTransport (setting the User-Agent header)
func New() *http.Client {
	return &http.Client{Transport: NewAddHeaderTransport(nil)}
}

// AddHeaderTransport sets its default headers on every outgoing request.
// Headers can be changed while requests are in flight.
type AddHeaderTransport struct {
	T http.RoundTripper

	mu     sync.RWMutex
	header http.Header
}

// NewAddHeaderTransport wraps T (http.DefaultTransport if nil). The User-Agent default header is preset.
func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	header := http.Header{}
	header.Set("User-Agent", UserAgent)
	return &AddHeaderTransport{T: T, header: header}
}

// Set sets a default header, replacing any previous value
func (t *AddHeaderTransport) Set(key, value string) {
	t.mu.Lock()
	t.header.Set(key, value)
	t.mu.Unlock()
}

// Del removes a default header
func (t *AddHeaderTransport) Del(key string) {
	t.mu.Lock()
	t.header.Del(key)
	t.mu.Unlock()
}

// Get returns the current value of a default header
func (t *AddHeaderTransport) Get(key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.header.Get(key)
}

// RoundTrip adds the default headers to a clone of req. Headers already set on the
// request win over the defaults.
func (t *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	t.mu.RLock()
	for key, values := range t.header {
		if req.Header.Get(key) != "" {
			continue
		}
		req.Header[key] = append([]string(nil), values...)
	}
	t.mu.RUnlock()

	return t.T.RoundTrip(req)
}

// CloseIdleConnections forwards to the wrapped transport
func (t *AddHeaderTransport) CloseIdleConnections() {
	closeIdle(t.T)
}

func closeIdle(rt http.RoundTripper) {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if c, ok := rt.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
