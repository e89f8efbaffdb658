// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

/*
Package conn implements the authenticated HTTP transport beneath the tenant
façade. It concerns itself only with the OAuth2 bearer token and with
proxying GET, POST and PATCH requests; it knows nothing about specific
record kinds.

A Connection is constructed lazily: no network I/O happens until the first
request. Before every request the connection obtains a token from its token
source, which caches and refreshes transparently.

# Pagination

Pages returns a lazy iterator over the "data" items of any paged resource:

	for raw, err := range c.Pages(ctx, "/fotoweb/archives") {
		if err != nil {
			return err
		}
		// decode raw
	}

Pages are fetched on demand as the sequence is consumed. Breaking out of
the loop early fetches no further pages, and every Pages call restarts from
the first page. Multiple iterations may be interleaved; each holds its own
cursor.

# Error Mapping

Network-level failures surface as [apierr.TransportError], non-success
responses as [apierr.RequestError], and token endpoint rejections as
[apierr.AuthError]. The connection never retries; PollReady's handling of
202 Accepted is readiness waiting, not error retry.
*/
package conn
