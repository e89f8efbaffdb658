// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

// Collection is a collection resource that assets can be listed in, moved
// to or uploaded to. Archives are collections; so are folders and search
// results.
type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Href string `json:"href"`
	Data string `json:"data"`
	Type string `json:"type"`

	Created  Timestamp `json:"created,omitzero"`
	Modified Timestamp `json:"modified,omitzero"`
	Archived Timestamp `json:"archived,omitzero"`

	SearchURL   string `json:"searchURL,omitempty"`
	OriginalURL string `json:"originalURL,omitempty"`

	IsSearchable bool     `json:"isSearchable"`
	Permissions  []string `json:"permissions,omitempty"`
	CanMoveTo    bool     `json:"canMoveTo"`
	CanUploadTo  bool     `json:"canUploadTo"`

	AssetCount int `json:"assetCount"`
}
