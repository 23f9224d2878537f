// Package webcraft is a client for the WebCraftAPI Minecraft server plugin.
//
// A Client is created with the base URL of the API. Call Authenticate once, after that
// every request carries the bearer token:
//
//	client := webcraft.New("http://localhost:8080")
//	defer client.Close()
//	if _, err := client.Authenticate(ctx, "admin", "secret"); err != nil {
//		return err
//	}
//	info, err := client.Players.GetPlayerInfo(ctx, "Notch")
//
// Every failed call returns an *APIError.
package webcraft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Client talks to one WebCraftAPI server. It is safe for concurrent use.
type Client struct {
	gw *gateway

	Admin     *AdminService
	API       *APIService
	Banlist   *BanlistService
	Chat      *ChatService
	Entities  *EntitiesService
	Items     *ItemsService
	Ping      *PingService
	Players   *PlayersService
	Plugins   *PluginsService
	Server    *ServerService
	Whitelist *WhitelistService
	Worlds    *WorldsService
}

// Option configures a Client
type Option func(*gateway)

// WithHTTPClient makes the client use an existing http client. The client will never
// close or modify it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(g *gateway) {
		if httpClient == nil {
			return
		}
		g.external = httpClient
		g.owned = false
	}
}

// WithLogger sets a logger that traces every request on debug level
func WithLogger(logger zerolog.Logger) Option {
	return func(g *gateway) {
		g.logger = logger
	}
}

// WithRateLimit limits the client to r requests per second with the given burst
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(g *gateway) {
		g.limiter = rate.NewLimiter(r, burst)
	}
}

// WithUserAgent overwrites the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(g *gateway) {
		g.userAgent = userAgent
	}
}

// WithToken starts the client with a token from a previous Authenticate call
func WithToken(token string) Option {
	return func(g *gateway) {
		g.token = token
	}
}

// New returns a new Client for the API at baseURL
func New(baseURL string, opts ...Option) *Client {
	gw := newGateway(baseURL, nil)
	for _, opt := range opts {
		opt(gw)
	}

	return &Client{
		gw:        gw,
		Admin:     &AdminService{gw},
		API:       &APIService{gw},
		Banlist:   &BanlistService{gw},
		Chat:      &ChatService{gw},
		Entities:  &EntitiesService{gw},
		Items:     &ItemsService{gw},
		Ping:      &PingService{gw},
		Players:   &PlayersService{gw},
		Plugins:   &PluginsService{gw},
		Server:    &ServerService{gw},
		Whitelist: &WhitelistService{gw},
		Worlds:    &WorldsService{gw},
	}
}

// BaseURL returns the base URL without trailing slash
func (c *Client) BaseURL() string {
	return c.gw.baseURL
}

// Open creates the underlying transport. Requests open it on demand, so calling
// Open is optional. Calling it multiple times is fine.
func (c *Client) Open() {
	c.gw.open()
}

// Close releases the transport if it was created by this client. A client created
// with WithHTTPClient never closes the provided client.
// The client can still be used after Close; the next request opens a new transport.
func (c *Client) Close() error {
	c.gw.close()
	return nil
}

// Run opens the client, calls fn and closes the client afterwards (only if
// the transport is owned by this client). fn is not called if ctx is already done.
func (c *Client) Run(ctx context.Context, fn func(c *Client) error) error {
	if err := ctx.Err(); err != nil {
		return transportFailure(err)
	}
	c.Open()
	defer c.Close()
	return fn(c)
}

// Authenticate logs in with username and password. The returned token is used
// for all following requests.
func (c *Client) Authenticate(ctx context.Context, username string, password string) (string, error) {
	return c.gw.authenticate(ctx, username, password)
}

// Token returns the current token ("" if not authenticated)
func (c *Client) Token() string {
	return c.gw.currentToken()
}

// HasCredentials returns true if a token is set
func (c *Client) HasCredentials() bool {
	return c.Token() != ""
}

// Call invokes any operation of the endpoint table. body is the JSON encoded request
// record (ignored for operations without body), args are the path parameters in order.
// The result is a pointer to the response record of the operation.
func (c *Client) Call(ctx context.Context, op Operation, body json.RawMessage, args ...string) (interface{}, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, invalidRequest(fmt.Errorf("unknown operation %q", op))
	}

	var req interface{}
	switch {
	case ep.Request != nil:
		value := reflect.New(ep.Request)
		if len(body) != 0 {
			dec := json.NewDecoder(bytes.NewReader(body))
			dec.DisallowUnknownFields()
			if err := dec.Decode(value.Interface()); err != nil {
				return nil, invalidRequest(err)
			}
		}
		req = value.Elem().Interface()
	case len(body) != 0:
		return nil, invalidRequest(fmt.Errorf("%s does not take a request body", op))
	}

	raw, err := c.gw.send(ctx, ep, req, args...)
	if err != nil {
		return nil, err
	}

	result := reflect.New(ep.Response)
	if err := json.Unmarshal(raw, result.Interface()); err != nil {
		return nil, malformed(0, err)
	}
	return result.Interface(), nil
}

// CheckAPIVersion fetches the API info and checks its version against a semver
// constraint (like ">= 1.2"). It returns the reported version.
func (c *Client) CheckAPIVersion(ctx context.Context, constraint string) (*semver.Version, error) {
	constraints, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, invalidRequest(err)
	}

	info, err := c.API.GetAPIInfo(ctx)
	if err != nil {
		return nil, err
	}

	version, err := semver.NewVersion(info.Version)
	if err != nil {
		return nil, malformed(0, fmt.Errorf("api version %q: %w", info.Version, err))
	}
	if !constraints.Check(version) {
		return version, &APIError{
			Message: fmt.Sprintf("API version %s does not satisfy %s", version, constraint),
			kind:    ErrIncompatibleVersion,
		}
	}
	return version, nil
}
