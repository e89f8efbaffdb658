// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package oauth

import "errors"

// Validation errors for token responses.
var (
	// ErrEmptyAccessToken indicates the token endpoint returned a 2xx response
	// without an access_token field.
	ErrEmptyAccessToken = errors.New("token response missing access_token")

	// ErrMissingTokenURL indicates a source was constructed without a token endpoint URL.
	ErrMissingTokenURL = errors.New("missing token endpoint URL")

	// ErrMissingCredentials indicates a source was constructed without a client ID or secret.
	ErrMissingCredentials = errors.New("missing client credentials")
)
