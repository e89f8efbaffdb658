// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package conn

import (
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// requestOptions accumulates per-request configuration. Validation failures
// are recorded and surfaced when the request is built.
type requestOptions struct {
	headers http.Header
	bearer  *string
	err     error
}

func newRequestOptions() *requestOptions {
	return &requestOptions{headers: http.Header{}}
}

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

// WithHeader adds an HTTP header to the request. The name and value are
// validated per RFC 7230 to reject CRLF injection and control characters.
func WithHeader(name, value string) RequestOption {
	return func(ro *requestOptions) {
		if err := validateHeader(name, value); err != nil {
			ro.err = err
			return
		}
		ro.headers.Set(name, value)
	}
}

// WithAccept sets the Accept header for this request.
func WithAccept(mediaType string) RequestOption {
	return WithHeader("Accept", mediaType)
}

// WithContentType sets the Content-Type header for this request.
func WithContentType(mediaType string) RequestOption {
	return WithHeader("Content-Type", mediaType)
}

// WithBearer uses the given token for this request instead of the
// connection's OAuth token source. Previews are fetched this way, with the
// asset's preview token. An empty token sends no Authorization header.
func WithBearer(token string) RequestOption {
	return func(ro *requestOptions) {
		ro.bearer = &token
	}
}

// validateHeader checks an HTTP header name and value per RFC 7230, using
// the same validation as Go's HTTP/2 implementation.
func validateHeader(name, value string) error {
	if name == "" {
		return fmt.Errorf("header name cannot be empty")
	}
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("invalid HTTP header name %q: contains invalid characters", name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value for %q: contains control characters", name)
	}
	return nil
}
