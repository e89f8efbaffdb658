// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package apierr

import (
	"errors"
	"fmt"
)

// AuthError reports that the token endpoint rejected the client-credentials
// exchange. The response body is retained for diagnostics; it never contains
// the client secret.
type AuthError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected by token endpoint (status %d): %s", e.StatusCode, e.Body)
}

// RequestError reports a non-success status from a data endpoint. It carries
// the status code and response body so callers can log or inspect the
// server's complaint.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// ParseError reports that a response body failed schema validation or JSON
// decoding. It indicates a contract mismatch between client and server and
// should not be retried.
type ParseError struct {
	// Resource names the record kind that failed to decode, e.g. "archive".
	Resource string
	Err      error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s response: %v", e.Resource, e.Err)
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// TransportError reports a network-level failure: timeout, DNS resolution,
// connection reset, or a cancelled context. The client does not retry these;
// callers may apply their own retry/backoff policy.
type TransportError struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAuth reports whether err is or wraps an AuthError.
func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsRequest reports whether err is or wraps a RequestError.
func IsRequest(err error) bool {
	var target *RequestError
	return errors.As(err, &target)
}

// IsParse reports whether err is or wraps a ParseError.
func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsTransport reports whether err is or wraps a TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// StatusCode extracts the HTTP status code from an error chain. It returns
// the code carried by an AuthError or RequestError, or 0 when the error
// carries no status (ParseError, TransportError, nil).
func StatusCode(err error) int {
	if err == nil {
		return 0
	}

	var auth *AuthError
	if errors.As(err, &auth) {
		return auth.StatusCode
	}

	var req *RequestError
	if errors.As(err, &req) {
		return req.StatusCode
	}

	return 0
}
