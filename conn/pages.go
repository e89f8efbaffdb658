// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package conn

import (
	"context"
	"encoding/json"
	"iter"

	"github.com/redmer/go-fwapi/model"
)

// Pages iterates over the "data" items of any paged resource, fetching
// pages lazily as the sequence is consumed. The iterator stops at the first
// error; items already yielded remain valid. Breaking out early fetches no
// further pages, and every call restarts from the first page.
func (c *Connection) Pages(ctx context.Context, path string, opts ...RequestOption) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		next := path
		for next != "" {
			resp, err := c.Get(ctx, next, opts...)
			if err != nil {
				yield(nil, err)
				return
			}

			page, err := model.DecodePage(resp.Body)
			if err != nil {
				yield(nil, err)
				return
			}
			if len(page.Data) == 0 {
				return
			}

			for _, item := range page.Data {
				if !yield(item, nil) {
					return
				}
			}

			next = page.NextURL()
		}
	}
}
