// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

// Package oauth implements the OAuth 2.0 client-credentials grant (RFC 6749
// Section 4.4) against a Fotoware tenant's token endpoint.
//
// # Token Source
//
// The package's central type is [ClientCredentialsSource], a caching token
// source. Constructing a source performs no network I/O; the first call to
// Token exchanges the client ID and secret for a bearer token and caches it:
//
//	src := oauth.NewClientCredentialsSource(
//		"https://acme.fotoware.cloud"+oauth.TokenPath,
//		clientID, clientSecret,
//	)
//	tok, err := src.Token(ctx)
//
// Subsequent calls reuse the cached token until it is within the expiry
// margin of its lifetime, at which point a single refresh is performed.
// Concurrent callers that race on an expired token are coalesced into one
// exchange via singleflight.
//
// # Failure Modes
//
// A 4xx response from the token endpoint yields an [apierr.AuthError];
// network failures yield an [apierr.TransportError]; a token response that
// cannot be decoded yields an [apierr.ParseError]. None of these are retried
// by the source.
package oauth
