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
)

func TestPollReady_WaitsForAccepted(t *testing.T) {
	t.Parallel()

	var polls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if polls.Add(1) < 3 {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		w.Write([]byte("rendition bytes"))
	}))
	defer srv.Close()

	c := New(srv.URL, "id", "secret",
		WithTokenSource(staticTokens("t")),
		WithPollInterval(time.Millisecond))

	rc, err := c.PollReady(context.Background(), "/renditions/42")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "rendition bytes", string(body))
	assert.Equal(t, int64(3), polls.Load())
}

func TestPollReady_ImmediateSuccess(t *testing.T) {
	t.Parallel()

	var polls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		polls.Add(1)
		w.Write([]byte("ready"))
	}))
	defer srv.Close()

	c := New(srv.URL, "id", "secret", WithTokenSource(staticTokens("t")))

	rc, err := c.PollReady(context.Background(), "/renditions/1")
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, int64(1), polls.Load())
}

func TestPollReady_ErrorStatusAborts(t *testing.T) {
	t.Parallel()

	var polls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		polls.Add(1)
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	c := New(srv.URL, "id", "secret",
		WithTokenSource(staticTokens("t")),
		WithPollInterval(time.Millisecond))

	_, err := c.PollReady(context.Background(), "/renditions/42")
	require.Error(t, err)
	assert.True(t, apierr.IsRequest(err))
	assert.Equal(t, int64(1), polls.Load(), "error statuses are not polled again")
}

func TestPollReady_ContextCancelsWait(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := New(srv.URL, "id", "secret",
		WithTokenSource(staticTokens("t")),
		WithPollInterval(10*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.PollReady(ctx, "/renditions/42")
	require.Error(t, err)
}
