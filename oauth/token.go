// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/redmer/go-fwapi/apierr"
)

// Token is the wire format of a successful token response (RFC 6749 Section 5.1).
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ClientCredentialsSource exchanges a client ID and secret for bearer tokens
// and caches the result until it nears expiry. It is safe for concurrent use;
// concurrent refreshes are coalesced into a single token exchange.
//
// The zero value is not usable; construct with NewClientCredentialsSource.
type ClientCredentialsSource struct {
	tokenURL     string
	clientID     string
	clientSecret string
	margin       time.Duration
	httpClient   *http.Client
	now          func() time.Time

	mu     sync.Mutex
	group  singleflight.Group
	cached string
	expiry time.Time
}

// SourceOption configures a ClientCredentialsSource.
type SourceOption func(*ClientCredentialsSource)

// WithHTTPClient sets the HTTP client used for token exchanges.
func WithHTTPClient(c *http.Client) SourceOption {
	return func(s *ClientCredentialsSource) {
		s.httpClient = c
	}
}

// WithExpiryMargin sets how long before actual expiry a cached token is
// treated as stale. The default is DefaultExpiryMargin.
func WithExpiryMargin(margin time.Duration) SourceOption {
	return func(s *ClientCredentialsSource) {
		s.margin = margin
	}
}

// withClock overrides the time source, for tests.
func withClock(now func() time.Time) SourceOption {
	return func(s *ClientCredentialsSource) {
		s.now = now
	}
}

// NewClientCredentialsSource returns a caching token source for the given
// token endpoint. No network I/O happens until the first Token call.
func NewClientCredentialsSource(tokenURL, clientID, clientSecret string, opts ...SourceOption) *ClientCredentialsSource {
	s := &ClientCredentialsSource{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		margin:       DefaultExpiryMargin,
		httpClient:   http.DefaultClient,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns a valid bearer token, performing a client-credentials
// exchange if no unexpired token is cached. Exactly one exchange is in
// flight at any time; concurrent callers share its result.
func (s *ClientCredentialsSource) Token(ctx context.Context) (string, error) {
	if s.tokenURL == "" {
		return "", ErrMissingTokenURL
	}
	if s.clientID == "" || s.clientSecret == "" {
		return "", ErrMissingCredentials
	}

	if tok, ok := s.cachedValid(); ok {
		return tok, nil
	}

	// The singleflight key is constant: a source serves exactly one tenant.
	tok, err, _ := s.group.Do("token", func() (any, error) {
		// A concurrent flight may have refreshed the cache while this
		// caller was waiting on the flight lock.
		if tok, ok := s.cachedValid(); ok {
			return tok, nil
		}
		return s.exchange(ctx)
	})
	if err != nil {
		return "", err
	}
	return tok.(string), nil
}

// Invalidate drops the cached token, forcing the next Token call to perform
// a fresh exchange.
func (s *ClientCredentialsSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = ""
	s.expiry = time.Time{}
}

func (s *ClientCredentialsSource) cachedValid() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == "" {
		return "", false
	}
	if s.now().After(s.expiry.Add(-s.margin)) {
		return "", false
	}
	return s.cached, true
}

// exchange performs the client-credentials grant and stores the result.
func (s *ClientCredentialsSource) exchange(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set(paramGrantType, GrantTypeClientCredentials)
	form.Set(paramClientID, s.clientID)
	form.Set(paramClientSecret, s.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &apierr.TransportError{Op: http.MethodPost, URL: s.tokenURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &apierr.TransportError{Op: http.MethodPost, URL: s.tokenURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apierr.TransportError{Op: http.MethodPost, URL: s.tokenURL, Err: err}
	}

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return "", &apierr.AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", &apierr.RequestError{
			Method:     http.MethodPost,
			URL:        s.tokenURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var tok Token
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", &apierr.ParseError{Resource: "token", Err: err}
	}
	if tok.AccessToken == "" {
		return "", &apierr.ParseError{Resource: "token", Err: ErrEmptyAccessToken}
	}

	s.mu.Lock()
	s.cached = tok.AccessToken
	s.expiry = s.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	s.mu.Unlock()

	return tok.AccessToken, nil
}
