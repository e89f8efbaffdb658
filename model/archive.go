// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

// Archive is a named collection resource belonging to a tenant. It is an
// immutable snapshot of server state at fetch time.
type Archive struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Href addresses the archive itself; Data addresses its paginated
	// asset listing.
	Href string `json:"href"`
	Data string `json:"data"`
	Type string `json:"type"`

	Created  Timestamp `json:"created,omitzero"`
	Modified Timestamp `json:"modified,omitzero"`

	// SearchURL is a template containing the {?q} placeholder. Archives
	// without one cannot be searched.
	SearchURL   string `json:"searchURL,omitempty"`
	OriginalURL string `json:"originalURL,omitempty"`

	// AssetCount is zero when the server does not report a count.
	AssetCount int `json:"assetCount"`
}

// Searchable reports whether this archive exposes a search URL template.
func (a *Archive) Searchable() bool {
	return a.SearchURL != ""
}
