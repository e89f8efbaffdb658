// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

// Package tenant is the main interface to the Fotoware API for a specific
// tenant (instance): iterate archives and assets, search, and fetch
// previews and renditions.
package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/url"
	"strings"
	"sync"

	"github.com/redmer/go-fwapi/conn"
	"github.com/redmer/go-fwapi/model"
	"github.com/redmer/go-fwapi/search"
)

// queryPlaceholder is the template variable in an archive's search URL.
const queryPlaceholder = "{?q}"

// ErrArchiveNotSearchable reports that an archive exposes no search URL.
var ErrArchiveNotSearchable = errors.New("archive is not searchable")

// Tenant is a session-scoped client for one customer's instance of the
// Fotoware API. It owns the HTTP session and token cache for its lifetime
// and is safe for concurrent use.
type Tenant struct {
	api *conn.Connection

	mu           sync.Mutex
	renditionURL string
}

// Connect returns a Tenant for the instance at baseURL, e.g.
// `https://acme.fotoware.cloud`, authenticating with the registered
// non-interactive application's client ID and secret. No network I/O
// happens until the first request.
func Connect(baseURL, clientID, clientSecret string, opts ...conn.Option) *Tenant {
	return &Tenant{api: conn.New(baseURL, clientID, clientSecret, opts...)}
}

// FromConnection wraps an existing API connection.
func FromConnection(c *conn.Connection) *Tenant {
	return &Tenant{api: c}
}

// Connection exposes the underlying API connection, for callers that need
// resources this façade does not cover.
func (t *Tenant) Connection() *conn.Connection {
	return t.api
}

// InstanceInfo describes the tenant instance.
func (t *Tenant) InstanceInfo(ctx context.Context) (*model.InstanceInfo, error) {
	resp, err := t.api.Get(ctx, "/fotoweb/me")
	if err != nil {
		return nil, err
	}
	return model.DecodeInstanceInfo(resp.Body)
}

// Archives iterates over the (paginated) archives in this tenant. Pages
// are fetched on demand; breaking out early fetches no further pages, and
// every call restarts from the first page.
func (t *Tenant) Archives(ctx context.Context) iter.Seq2[*model.Archive, error] {
	return decodeSeq(t.api.Pages(ctx, "/fotoweb/archives"), model.DecodeArchive)
}

// ArchiveByID gets the archive with the given archive ID.
func (t *Tenant) ArchiveByID(ctx context.Context, id string) (*model.Archive, error) {
	resp, err := t.api.Get(ctx, fmt.Sprintf("/fotoweb/archives/%s/", url.PathEscape(id)))
	if err != nil {
		return nil, err
	}
	return model.DecodeArchive(resp.Body)
}

// Assets iterates over the (paginated) assets in an archive.
func (t *Tenant) Assets(ctx context.Context, archive *model.Archive) iter.Seq2[*model.Asset, error] {
	return decodeSeq(t.api.Pages(ctx, archive.Data), model.DecodeAsset)
}

// AssetByHref gets the asset behind its href.
func (t *Tenant) AssetByHref(ctx context.Context, href string) (*model.Asset, error) {
	resp, err := t.api.Get(ctx, href)
	if err != nil {
		return nil, err
	}
	return model.DecodeAsset(resp.Body)
}

// SearchAssets iterates over the assets matching expr, ordered by oldest
// modification first. With no archives given, all of the tenant's archives
// are searched in turn. Archives without a search URL surface
// ErrArchiveNotSearchable.
func (t *Tenant) SearchAssets(ctx context.Context, expr search.Expr, archives ...*model.Archive) iter.Seq2[*model.Asset, error] {
	return func(yield func(*model.Asset, error) bool) {
		if err := expr.Err(); err != nil {
			yield(nil, err)
			return
		}

		targets := archives
		if len(targets) == 0 {
			for a, err := range t.Archives(ctx) {
				if err != nil {
					yield(nil, err)
					return
				}
				targets = append(targets, a)
			}
		}

		for _, a := range targets {
			if !a.Searchable() {
				yield(nil, fmt.Errorf("archive %q: %w", a.Name, ErrArchiveNotSearchable))
				return
			}

			// ;o=+ orders by oldest modified first.
			q := ";o=+?q=" + url.QueryEscape(strings.TrimSpace(expr.String()))
			queryURL := strings.Replace(a.SearchURL, queryPlaceholder, q, 1)

			for raw, err := range t.api.Pages(ctx, queryURL) {
				if err != nil {
					yield(nil, err)
					return
				}
				asset, err := model.DecodeAsset(raw)
				if err != nil {
					yield(nil, err)
					return
				}
				if !yield(asset, nil) {
					return
				}
			}
		}
	}
}

// decodeSeq lifts a raw page-item sequence into a typed record sequence.
// The sequence ends at the first error; a failed decode surfaces the
// ParseError and stops.
func decodeSeq[T any](pages iter.Seq2[json.RawMessage, error], decode func([]byte) (*T, error)) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for raw, err := range pages {
			if err != nil {
				yield(nil, err)
				return
			}
			record, err := decode(raw)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}
