// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package tenant

import (
	"context"
	"errors"

	"github.com/redmer/go-fwapi/conn"
	"github.com/redmer/go-fwapi/model"
)

// Media types of the export exchange.
const (
	exportRequestType = "application/vnd.fotoware.export-request+json"
	exportDataType    = "application/vnd.fotoware.export-data+json"
)

// ErrNotExportable reports that the asset's document type cannot be
// exported. Only image assets can.
var ErrNotExportable = errors.New("asset cannot be exported")

// ExportRequest chooses how an asset is exported.
type ExportRequest struct {
	// Preset is the href of an export preset, e.g.
	// `/fotoweb/me/presets/export/<id>`. See ExportPresetPath.
	Preset string

	// Width and Height bound the exported image; zero leaves the
	// dimension to the preset.
	Width  int
	Height int

	// Publication names the site the export is attributed to. Defaults to
	// the tenant base URL.
	Publication string
}

// exportRequest is the wire form of an export order.
type exportRequest struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Publication string `json:"publication"`
	Preset      string `json:"preset"`
}

// ExportPresetPath returns the href of an export preset by its ID.
func ExportPresetPath(presetID string) string {
	return "/fotoweb/me/presets/export/" + presetID
}

// ExportLocations exports an asset through an export preset and returns
// the permanent locations of the exported image. Non-image assets are
// rejected with ErrNotExportable.
func (t *Tenant) ExportLocations(ctx context.Context, asset *model.Asset, req ExportRequest) (*model.ImageExport, error) {
	if !asset.CanBeExported() {
		return nil, ErrNotExportable
	}

	publication := req.Publication
	if publication == "" {
		publication = t.api.BaseURL()
	}
	payload := exportRequest{
		Width:       req.Width,
		Height:      req.Height,
		Publication: publication,
		Preset:      req.Preset,
	}

	resp, err := t.api.Send(ctx, conn.MethodExport, asset.Href, payload,
		conn.WithContentType(exportRequestType),
		conn.WithAccept(exportDataType),
	)
	if err != nil {
		return nil, err
	}
	return model.DecodeImageExport(resp.Body)
}
