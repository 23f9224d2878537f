package webcraft

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/minepkg/webcraft/internals/ownhttp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const authenticatePath = "/api/authenticate"

// session is one open transport. headers are the default headers of every request
// sent through http.
type session struct {
	http    *http.Client
	headers *ownhttp.AddHeaderTransport
	// base is only set if the gateway created (and owns) the transport
	base *http.Transport
}

// gateway owns the transport and the credential. All resource groups talk to the
// server through it.
type gateway struct {
	baseURL   string
	external  *http.Client
	owned     bool
	userAgent string
	limiter   *rate.Limiter
	logger    zerolog.Logger

	// newBase creates the underlying transport of owned sessions
	newBase func() *http.Transport

	mu      sync.Mutex
	token   string
	session *session
}

func newGateway(baseURL string, external *http.Client) *gateway {
	return &gateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		external:  external,
		owned:     external == nil,
		userAgent: ownhttp.UserAgent,
		logger:    zerolog.Nop(),
		newBase: func() *http.Transport {
			return http.DefaultTransport.(*http.Transport).Clone()
		},
	}
}

// open creates the transport if none is live. Calling it again is a no-op.
func (g *gateway) open() *session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.openLocked()
}

func (g *gateway) openLocked() *session {
	if g.session != nil {
		return g.session
	}

	s := &session{}
	var rt http.RoundTripper
	if g.owned {
		s.base = g.newBase()
		rt = s.base
	} else {
		// share the callers connection pool, but never touch the caller's client
		rt = g.external.Transport
	}
	if g.limiter != nil {
		rt = ownhttp.NewThrottleTransport(rt, g.limiter)
	}
	s.headers = ownhttp.NewAddHeaderTransport(rt)
	s.headers.Set("User-Agent", g.userAgent)
	s.headers.Set("Content-Type", "application/json")
	if g.token != "" {
		s.headers.Set("Authorization", "Bearer "+g.token)
	}

	s.http = &http.Client{Transport: s.headers}
	if !g.owned {
		s.http.Timeout = g.external.Timeout
		s.http.Jar = g.external.Jar
		s.http.CheckRedirect = g.external.CheckRedirect
	}

	g.session = s
	return s
}

// close releases the transport if (and only if) the gateway created it
func (g *gateway) close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.owned || g.session == nil {
		return
	}
	g.session.base.CloseIdleConnections()
	g.session = nil
}

// setToken stores the credential and attaches it to the live transport
func (g *gateway) setToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.token = token
	if g.session != nil {
		g.session.headers.Set("Authorization", "Bearer "+token)
	}
}

func (g *gateway) currentToken() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.token
}

// authenticate exchanges username and password for a bearer token
func (g *gateway) authenticate(ctx context.Context, username, password string) (string, error) {
	payload := AuthenticateRequest{Username: username, Password: password}
	if err := validateRequest(payload); err != nil {
		return "", err
	}

	res, body, err := g.do(ctx, http.MethodPost, authenticatePath, nil, payload)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		message := "Unknown error"
		errRes := ErrorResponse{}
		if err := json.Unmarshal(body, &errRes); err != nil {
			message = "authentication failed with status " + strconv.Itoa(res.StatusCode)
		} else if errRes.Message != "" {
			message = errRes.Message
		}
		return "", newAPIError(message, res.StatusCode)
	}

	// the server answers with a bare JSON string, not an object
	token := strings.TrimSpace(string(body))
	token = strings.TrimPrefix(token, `"`)
	token = strings.TrimSuffix(token, `"`)

	g.setToken(token)
	return token, nil
}

// getJSON does a GET request and returns the JSON body
func (g *gateway) getJSON(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	res, body, err := g.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(res, body); err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, malformed(res.StatusCode, errors.New("body is not valid JSON"))
	}
	return body, nil
}

// postJSON does a POST request. 200 responses that are not JSON are wrapped as
// `{"response": <text>}`, other 2xx responses result in an empty object.
func (g *gateway) postJSON(ctx context.Context, path string, data interface{}) (json.RawMessage, error) {
	res, body, err := g.do(ctx, http.MethodPost, path, nil, data)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(res, body); err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return json.RawMessage(`{}`), nil
	}

	if isJSON(res.Header.Get("Content-Type")) {
		if !json.Valid(body) {
			return nil, malformed(res.StatusCode, errors.New("body is not valid JSON"))
		}
		return body, nil
	}

	wrapped, err := json.Marshal(map[string]string{"response": string(body)})
	if err != nil {
		return nil, malformed(res.StatusCode, err)
	}
	return wrapped, nil
}

// patchJSON does a PATCH request, the server always answers with JSON here
func (g *gateway) patchJSON(ctx context.Context, path string, data interface{}) (json.RawMessage, error) {
	res, body, err := g.do(ctx, http.MethodPatch, path, nil, data)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(res, body); err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, malformed(res.StatusCode, errors.New("body is not valid JSON"))
	}
	return body, nil
}

// do sends the request and reads the complete body
func (g *gateway) do(ctx context.Context, method, path string, query url.Values, data interface{}) (*http.Response, []byte, error) {
	s := g.open()

	var reader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, nil, invalidRequest(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	target := g.baseURL + path
	if len(query) != 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, nil, invalidRequest(err)
	}

	start := time.Now()
	res, err := s.http.Do(req)
	if err != nil {
		return nil, nil, transportFailure(err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, transportFailure(errors.Wrap(err, "reading response body"))
	}

	g.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("took", time.Since(start)).
		Msg("webcraft request")

	return res, body, nil
}

// checkResponse turns statuses >= 400 into an APIError
func checkResponse(res *http.Response, body []byte) error {
	if res.StatusCode < 400 {
		return nil
	}

	message := "API request failed with status " + strconv.Itoa(res.StatusCode)
	errRes := ErrorResponse{}
	if err := json.Unmarshal(body, &errRes); err == nil && errRes.Message != "" {
		message = errRes.Message
	}
	return newAPIError(message, res.StatusCode)
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
