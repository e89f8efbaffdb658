// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

/*
Package apierr defines the error taxonomy surfaced by the Fotoware API client.

Every failure returned by this module is one of four distinguishable kinds,
so callers can decide what is worth retrying without string matching:

  - [AuthError]: the token endpoint rejected the client credentials.
    Not retryable; fix the credentials.
  - [RequestError]: a data endpoint returned a non-success status. The
    status code and response body are retained for diagnostics. 5xx
    responses are candidates for caller-side retry.
  - [ParseError]: a response body did not match the expected schema. This
    is a contract violation between client and server, not a transient
    condition; do not retry.
  - [TransportError]: a network-level failure (timeout, DNS, connection
    reset). Candidates for caller-side retry; the client never retries
    automatically.

All four types support the standard wrapping idiom:

	var reqErr *apierr.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode >= 500 {
		// maybe retry
	}

or the package predicates:

	if apierr.IsTransport(err) {
		// maybe retry
	}
*/
package apierr
