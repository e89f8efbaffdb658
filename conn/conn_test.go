// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package conn

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmer/go-fwapi/apierr"
	"github.com/redmer/go-fwapi/oauth"
)

// staticTokens is a TokenSource that always returns the same token.
type staticTokens string

func (s staticTokens) Token(_ context.Context) (string, error) {
	return string(s), nil
}

func TestConnection_BearerInjection(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "id", "secret", WithTokenSource(staticTokens("tok-123")))
	_, err := c.Get(context.Background(), "/fotoweb/me")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestConnection_LazyAuthentication(t *testing.T) {
	t.Parallel()

	var exchanges, dataRequests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+oauth.TokenPath, func(w http.ResponseWriter, _ *http.Request) {
		exchanges.Add(1)
		w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("GET /fotoweb/me", func(w http.ResponseWriter, r *http.Request) {
		dataRequests.Add(1)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Write([]byte(`{"searchURL": "/fotoweb/search{?q}"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, "my-client", "my-secret")

	// Construction alone performs no I/O.
	require.Equal(t, int64(0), exchanges.Load())

	// First request: exactly one exchange, then the data request.
	_, err := c.Get(context.Background(), "/fotoweb/me")
	require.NoError(t, err)
	assert.Equal(t, int64(1), exchanges.Load())
	assert.Equal(t, int64(1), dataRequests.Load())

	// Second request reuses the cached token.
	_, err = c.Get(context.Background(), "/fotoweb/me")
	require.NoError(t, err)
	assert.Equal(t, int64(1), exchanges.Load())
	assert.Equal(t, int64(2), dataRequests.Load())
}

func TestConnection_AuthErrorStopsRequest(t *testing.T) {
	t.Parallel()

	var dataRequests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+oauth.TokenPath, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		dataRequests.Add(1)
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, "my-client", "bad-secret")
	_, err := c.Get(context.Background(), "/fotoweb/me")
	require.Error(t, err)
	assert.True(t, apierr.IsAuth(err))
	assert.Equal(t, int64(0), dataRequests.Load(), "no data request after rejected exchange")
}

func TestConnection_RequestError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such archive", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "id", "secret", WithTokenSource(staticTokens("t")))
	_, err := c.Get(context.Background(), "/fotoweb/archives/999")
	require.Error(t, err)

	var reqErr *apierr.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "no such archive")
	assert.Equal(t, http.MethodGet, reqErr.Method)
}

func TestConnection_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "id", "secret", WithTokenSource(staticTokens("t")))
	_, err := c.Get(context.Background(), "/fotoweb/me")
	require.Error(t, err)
	assert.True(t, apierr.IsTransport(err))
}

func TestConnection_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(srv.URL, "id", "secret", WithTokenSource(staticTokens("t")))
	_, err := c.Get(ctx, "/fotoweb/me")
	require.Error(t, err)
	assert.True(t, apierr.IsTransport(err))
}

func TestConnection_PostAndPatch(t *testing.T) {
	t.Parallel()

	type received struct {
		method, contentType, body string
	}
	var got received
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = received{r.Method, r.Header.Get("Content-Type"), string(body)}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "id", "secret", WithTokenSource(staticTokens("t")))

	_, err := c.Post(context.Background(), "/fotoweb/api/uploads", map[string]string{"filename": "a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "application/json", got.contentType)
	assert.JSONEq(t, `{"filename":"a.jpg"}`, got.body)

	_, err = c.Patch(context.Background(), "/a/1", map[string]any{"metadata": map[string]any{"80": map[string]string{"value": "x"}}},
		WithContentType("application/vnd.fotoware.assetupdate+json"))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, "application/vnd.fotoware.assetupdate+json", got.contentType)
}

func TestConnection_WithBearerOverride(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	// The token source must not be consulted when a bearer is supplied.
	c := New(srv.URL, "id", "secret", WithTokenSource(failingTokens{}))

	rc, err := c.GetStream(context.Background(), "/p/small", WithBearer("preview-token"))
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "Bearer preview-token", gotAuth)
}

type failingTokens struct{}

func (failingTokens) Token(_ context.Context) (string, error) {
	return "", &apierr.AuthError{StatusCode: 401, Body: "should not be called"}
}

func TestConnection_InvalidHeaderRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "id", "secret", WithTokenSource(staticTokens("t")))
	_, err := c.Get(context.Background(), "/fotoweb/me", WithHeader("X-Bad\r\nHeader", "v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP header name")

	_, err = c.Get(context.Background(), "/fotoweb/me", WithHeader("X-Ok", "bad\x00value"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "control characters")
}

func TestConnection_TimeoutOption(t *testing.T) {
	t.Parallel()

	c := New("https://acme.fotoware.cloud", "id", "secret")
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)

	c = New("https://acme.fotoware.cloud", "id", "secret", WithTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)

	// A supplied client wins over WithTimeout in either option order.
	own := &http.Client{Timeout: time.Minute}
	c = New("https://acme.fotoware.cloud", "id", "secret", WithTimeout(5*time.Second), WithHTTPClient(own))
	assert.Same(t, own, c.httpClient)
	c = New("https://acme.fotoware.cloud", "id", "secret", WithHTTPClient(own), WithTimeout(5*time.Second))
	assert.Same(t, own, c.httpClient)
}

func TestConnection_ResolvesAbsoluteURLs(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "id", "secret", WithTokenSource(staticTokens("t")))

	// Relative path joined with base URL.
	_, err := c.Get(context.Background(), "fotoweb/me")
	require.NoError(t, err)
	assert.Equal(t, "/fotoweb/me", gotPath)

	// Absolute URL passes through unchanged.
	_, err = c.Get(context.Background(), srv.URL+"/absolute/link")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/link", gotPath)
}
