// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package oauth

import "time"

// TokenPath is the token endpoint path relative to a tenant's base URL.
const TokenPath = "/fotoweb/oauth2/token"

// Grant types as defined by RFC 6749.
const (
	// GrantTypeClientCredentials is the client credentials grant type (RFC 6749 Section 4.4).
	GrantTypeClientCredentials = "client_credentials"
)

// Form parameters for the token request (RFC 6749 Section 4.4.2).
// Fotoware expects client authentication in the request body
// (client_secret_post), not HTTP Basic auth.
const (
	paramGrantType    = "grant_type"
	paramClientID     = "client_id"
	paramClientSecret = "client_secret"
)

// DefaultExpiryMargin is how long before its actual expiry a cached token
// is considered stale. The margin absorbs clock skew and request latency so
// a token is never presented past its lifetime.
const DefaultExpiryMargin = 30 * time.Second
