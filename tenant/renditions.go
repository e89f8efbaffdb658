// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package tenant

import (
	"context"
	"errors"
	"io"

	"github.com/redmer/go-fwapi/conn"
	"github.com/redmer/go-fwapi/model"
)

// Media types of the rendition request exchange.
const (
	renditionRequestType  = "application/vnd.fotoware.rendition-request+json"
	renditionResponseType = "application/vnd.fotoware.rendition-response+json"
)

// ErrNoRenditionService reports that the tenant exposes no rendition
// request endpoint.
var ErrNoRenditionService = errors.New("tenant exposes no rendition request service")

// renditionRequest is the payload that orders a rendition export.
type renditionRequest struct {
	Href string `json:"href"`
}

// Preview streams a ready-made preview of an asset. Previews are
// authorized with the asset's preview token instead of the OAuth bearer
// token. The caller must close the stream.
func (t *Tenant) Preview(ctx context.Context, asset *model.Asset, preview *model.AssetPreview) (io.ReadCloser, error) {
	return t.api.GetStream(ctx, preview.Href,
		conn.WithBearer(asset.PreviewToken),
		conn.WithAccept("*/*"),
	)
}

// RequestRendition orders the export of a rendition and returns the URL
// where it becomes available. The export runs in the background; poll the
// returned URL with Rendition or conn.PollReady.
func (t *Tenant) RequestRendition(ctx context.Context, rendition *model.AssetRendition) (string, error) {
	endpoint, err := t.renditionService(ctx)
	if err != nil {
		return "", err
	}

	resp, err := t.api.Post(ctx, endpoint, renditionRequest{Href: rendition.Href},
		conn.WithContentType(renditionRequestType),
		conn.WithAccept(renditionResponseType),
	)
	if err != nil {
		return "", err
	}
	return resp.Header.Get("Location"), nil
}

// Rendition orders the export of a rendition, waits for the server to
// produce it, and streams the file. The caller must close the stream; the
// context bounds the whole wait.
func (t *Tenant) Rendition(ctx context.Context, rendition *model.AssetRendition) (io.ReadCloser, error) {
	location, err := t.RequestRendition(ctx, rendition)
	if err != nil {
		return nil, err
	}
	return t.api.PollReady(ctx, location, conn.WithAccept("*/*"))
}

// renditionService resolves and caches the tenant's rendition request URL.
func (t *Tenant) renditionService(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.renditionURL != "" {
		return t.renditionURL, nil
	}

	info, err := t.InstanceInfo(ctx)
	if err != nil {
		return "", err
	}
	if info.Services.RenditionRequest == "" {
		return "", ErrNoRenditionService
	}
	t.renditionURL = info.Services.RenditionRequest
	return t.renditionURL, nil
}
