// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package conn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redmer/go-fwapi/apierr"
	"github.com/redmer/go-fwapi/logger"
	"github.com/redmer/go-fwapi/oauth"
)

// DefaultTimeout bounds each HTTP request when no client is supplied.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies bearer tokens for outgoing requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Connection is the authenticated HTTP session against one tenant. It is
// safe for concurrent use.
type Connection struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource

	pollInitialInterval time.Duration
	pollMaxElapsed      time.Duration
	tokenExpiryMargin   time.Duration
	requestTimeout      time.Duration
}

// Option configures a Connection.
type Option func(*Connection)

// WithHTTPClient sets the HTTP client for data requests and token exchanges.
func WithHTTPClient(c *http.Client) Option {
	return func(conn *Connection) {
		conn.httpClient = c
	}
}

// WithTimeout sets the per-request timeout. Ignored when WithHTTPClient
// supplies a client of its own, regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(conn *Connection) {
		conn.requestTimeout = d
	}
}

// WithTokenSource replaces the default client-credentials source. Intended
// for tests and for callers that manage tokens themselves.
func WithTokenSource(ts TokenSource) Option {
	return func(conn *Connection) {
		conn.tokens = ts
	}
}

// WithTokenExpiryMargin refreshes the OAuth token this long before its
// reported expiry. Ignored when WithTokenSource supplies a source.
func WithTokenExpiryMargin(d time.Duration) Option {
	return func(conn *Connection) {
		conn.tokenExpiryMargin = d
	}
}

// WithPollInterval sets the initial interval between readiness polls in
// PollReady.
func WithPollInterval(d time.Duration) Option {
	return func(conn *Connection) {
		conn.pollInitialInterval = d
	}
}

// WithPollMaxElapsed bounds the total time PollReady waits for a resource.
func WithPollMaxElapsed(d time.Duration) Option {
	return func(conn *Connection) {
		conn.pollMaxElapsed = d
	}
}

// New returns a Connection for the tenant at baseURL, e.g.
// `https://acme.fotoware.cloud`. Construction performs no network I/O; the
// first request triggers the client-credentials exchange.
func New(baseURL, clientID, clientSecret string, opts ...Option) *Connection {
	c := &Connection{
		baseURL:             strings.TrimSuffix(baseURL, "/"),
		pollInitialInterval: 5 * time.Second,
		pollMaxElapsed:      2 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		timeout := DefaultTimeout
		if c.requestTimeout > 0 {
			timeout = c.requestTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	if c.tokens == nil {
		sourceOpts := []oauth.SourceOption{oauth.WithHTTPClient(c.httpClient)}
		if c.tokenExpiryMargin > 0 {
			sourceOpts = append(sourceOpts, oauth.WithExpiryMargin(c.tokenExpiryMargin))
		}
		c.tokens = oauth.NewClientCredentialsSource(
			c.baseURL+oauth.TokenPath, clientID, clientSecret, sourceOpts...)
	}
	return c
}

// BaseURL returns the tenant base URL without a trailing slash.
func (c *Connection) BaseURL() string {
	return c.baseURL
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// MethodExport is the nonstandard HTTP verb the API uses for export
// requests.
const MethodExport = "EXPORT"

// Get performs a GET request on the API.
func (c *Connection) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.request(ctx, http.MethodGet, path, "", nil, opts...)
}

// Send performs a request with an arbitrary method and a JSON-encoded
// payload. Most callers want Get, Post or Patch; Send exists for the API's
// nonstandard verbs such as MethodExport.
func (c *Connection) Send(ctx context.Context, method, path string, payload any, opts ...RequestOption) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request payload: %w", err)
	}
	return c.request(ctx, method, path, "application/json", body, opts...)
}

// Post performs a POST request with a JSON-encoded payload.
func (c *Connection) Post(ctx context.Context, path string, payload any, opts ...RequestOption) (*Response, error) {
	return c.Send(ctx, http.MethodPost, path, payload, opts...)
}

// PostBytes performs a POST request with a raw body and content type, for
// non-JSON payloads such as multipart upload chunks.
func (c *Connection) PostBytes(ctx context.Context, path, contentType string, body []byte, opts ...RequestOption) (*Response, error) {
	return c.request(ctx, http.MethodPost, path, contentType, body, opts...)
}

// Patch performs a PATCH request with a JSON-encoded payload.
func (c *Connection) Patch(ctx context.Context, path string, payload any, opts ...RequestOption) (*Response, error) {
	return c.Send(ctx, http.MethodPatch, path, payload, opts...)
}

// GetStream performs a GET request and returns the response body as a
// stream. The caller must close it.
func (c *Connection) GetStream(ctx context.Context, path string, opts ...RequestOption) (io.ReadCloser, error) {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil, opts...)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &apierr.RequestError{
			Method:     http.MethodGet,
			URL:        resp.Request.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	return resp.Body, nil
}

// request performs a round trip, reads the whole body, and maps non-success
// statuses to RequestError.
func (c *Connection) request(ctx context.Context, method, path, contentType string, body []byte, opts ...RequestOption) (*Response, error) {
	resp, err := c.do(ctx, method, path, contentType, body, opts...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.TransportError{Op: method, URL: resp.Request.URL.String(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apierr.RequestError{
			Method:     method,
			URL:        resp.Request.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// do builds and sends one request: resolves the URL, attaches the bearer
// token and headers, and maps network failures to TransportError.
func (c *Connection) do(ctx context.Context, method, path, contentType string, body []byte, opts ...RequestOption) (*http.Response, error) {
	ro := newRequestOptions()
	for _, opt := range opts {
		opt(ro)
	}
	if ro.err != nil {
		return nil, ro.err
	}

	fullURL := c.resolve(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, &apierr.TransportError{Op: method, URL: fullURL, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for name, values := range ro.headers {
		req.Header[name] = values
	}

	if ro.bearer != nil {
		if *ro.bearer != "" {
			req.Header.Set("Authorization", "Bearer "+*ro.bearer)
		}
	} else {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	logger.Debugw("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apierr.TransportError{Op: method, URL: fullURL, Err: err}
	}
	return resp, nil
}

// resolve joins a path with the tenant base URL. Absolute URLs, as returned
// in paging links and search templates, pass through unchanged.
func (c *Connection) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
