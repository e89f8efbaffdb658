// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package conn

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"

	"github.com/redmer/go-fwapi/apierr"
	"github.com/redmer/go-fwapi/logger"
)

// ErrNotReady reports that a backgrounded resource answered 202 Accepted:
// the server is still producing it.
var ErrNotReady = errors.New("resource not ready")

// PollReady repeatedly GETs a backgrounded resource, such as a requested
// rendition, until the server answers 200 OK, and returns the body stream.
// 202 Accepted means not ready yet and is polled again with exponential
// backoff; any other status and any transport failure aborts immediately.
// The caller's context cancels the wait.
func (c *Connection) PollReady(ctx context.Context, path string, opts ...RequestOption) (io.ReadCloser, error) {
	attempt := func() (io.ReadCloser, error) {
		resp, err := c.do(ctx, http.MethodGet, path, "", nil, opts...)
		if err != nil {
			// Transport and auth failures are not readiness conditions.
			return nil, backoff.Permanent(err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			return resp.Body, nil
		case http.StatusAccepted:
			resp.Body.Close()
			logger.Debugw("resource not ready, polling again", "path", path)
			return nil, ErrNotReady
		default:
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, backoff.Permanent(&apierr.RequestError{
				Method:     http.MethodGet,
				URL:        resp.Request.URL.String(),
				StatusCode: resp.StatusCode,
				Body:       string(body),
			})
		}
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.pollInitialInterval
	policy.MaxElapsedTime = c.pollMaxElapsed

	return backoff.RetryWithData(attempt, backoff.WithContext(policy, ctx))
}
