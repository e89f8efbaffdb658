// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

import "encoding/json"

// PagingInfo links to the other pages of a paged resource. Links are paths
// relative to the tenant base URL; an empty Next marks the final page.
type PagingInfo struct {
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

// Page is one page of any paged resource. Items stay raw so the caller can
// decode them as the record kind it expects.
type Page struct {
	Data   []json.RawMessage `json:"data"`
	Paging *PagingInfo       `json:"paging,omitempty"`
}

// NextURL returns the path of the next page, or "" on the final page.
func (p *Page) NextURL() string {
	if p.Paging == nil {
		return ""
	}
	return p.Paging.Next
}
