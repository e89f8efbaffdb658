// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

// AssetPreview is a ready-made preview image of an asset. Previews are
// fetched with the asset's preview token, not the OAuth bearer token.
type AssetPreview struct {
	Href   string `json:"href"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int    `json:"size"`
	Square bool   `json:"square"`
}

// MaxSide returns the preview's size: the declared size, or the longest
// side when the server omits it.
func (p *AssetPreview) MaxSide() int {
	if p.Size > 0 {
		return p.Size
	}
	return max(p.Width, p.Height)
}

// AssetRendition is a downloadable variant of an asset, produced on demand
// via a rendition request.
type AssetRendition struct {
	Href        string `json:"href"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Size        int    `json:"size"`
	Original    bool   `json:"original"`
	Profile     string `json:"profile,omitempty"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default"`
}

// MaxSide returns the rendition's size: the declared size, or the longest
// side when the server omits it.
func (r *AssetRendition) MaxSide() int {
	if r.Size > 0 {
		return r.Size
	}
	return max(r.Width, r.Height)
}
