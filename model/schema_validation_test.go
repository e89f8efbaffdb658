// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmer/go-fwapi/apierr"
)

const marketingArchiveJSON = `{
	"id": "5000",
	"name": "Marketing",
	"description": "Campaign material",
	"href": "/fotoweb/archives/5000/",
	"data": "/fotoweb/data/a/5000/",
	"type": "archive",
	"created": "2024-03-01T09:30:00Z",
	"modified": "",
	"searchURL": "/fotoweb/archives/5000{?q}",
	"assetCount": 1289
}`

func TestDecodeArchive(t *testing.T) {
	t.Parallel()

	t.Run("valid archive", func(t *testing.T) {
		t.Parallel()

		a, err := DecodeArchive([]byte(marketingArchiveJSON))
		require.NoError(t, err)
		assert.Equal(t, "5000", a.ID)
		assert.Equal(t, "Marketing", a.Name)
		assert.Equal(t, "/fotoweb/data/a/5000/", a.Data)
		assert.Equal(t, 1289, a.AssetCount)
		assert.True(t, a.Searchable())
		assert.False(t, a.Created.IsZero())
		// Empty-string timestamps decode as unset.
		assert.True(t, a.Modified.IsZero())
	})

	t.Run("minimal listing record", func(t *testing.T) {
		t.Parallel()

		// Listings may carry only the identifying fields; link fields are
		// optional.
		a, err := DecodeArchive([]byte(`{"id": "1", "name": "Marketing"}`))
		require.NoError(t, err)
		assert.Equal(t, "Marketing", a.Name)
		assert.False(t, a.Searchable())
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeArchive([]byte(`{"name": "No id"}`))
		require.Error(t, err)
		assert.True(t, apierr.IsParse(err))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeArchive([]byte(`{"name": "Broken`))
		require.Error(t, err)
		assert.True(t, apierr.IsParse(err))
	})

	t.Run("wrong field type", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeArchive([]byte(`{"id": "5", "name": 42, "href": "/x", "data": "/y", "type": "archive"}`))
		require.Error(t, err)
		assert.True(t, apierr.IsParse(err))
	})
}

func TestDecodePage(t *testing.T) {
	t.Parallel()

	t.Run("page with items and next link", func(t *testing.T) {
		t.Parallel()

		p, err := DecodePage([]byte(`{
			"data": [{"id": "1"}, {"id": "2"}],
			"paging": {"next": "/fotoweb/archives/?p=2", "first": "/fotoweb/archives/"}
		}`))
		require.NoError(t, err)
		assert.Len(t, p.Data, 2)
		assert.Equal(t, "/fotoweb/archives/?p=2", p.NextURL())
	})

	t.Run("final page has no next link", func(t *testing.T) {
		t.Parallel()

		p, err := DecodePage([]byte(`{"data": [{"id": "3"}]}`))
		require.NoError(t, err)
		assert.Len(t, p.Data, 1)
		assert.Empty(t, p.NextURL())
	})

	t.Run("first page nested under assets", func(t *testing.T) {
		t.Parallel()

		p, err := DecodePage([]byte(`{
			"assets": {"data": [{"href": "/a/1"}], "paging": {"next": "/next-page"}}
		}`))
		require.NoError(t, err)
		assert.Len(t, p.Data, 1)
		assert.Equal(t, "/next-page", p.NextURL())
	})

	t.Run("empty envelope is an empty page", func(t *testing.T) {
		t.Parallel()

		p, err := DecodePage([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, p.Data)
		assert.Empty(t, p.NextURL())
	})

	t.Run("non-array data fails validation", func(t *testing.T) {
		t.Parallel()

		_, err := DecodePage([]byte(`{"data": "not-a-list"}`))
		require.Error(t, err)
		assert.True(t, apierr.IsParse(err))
	})
}

func TestDecodeInstanceInfo(t *testing.T) {
	t.Parallel()

	info, err := DecodeInstanceInfo([]byte(`{
		"services": {"search": "/fotoweb/search", "rendition_request": "/fotoweb/renditions"},
		"searchURL": "/fotoweb/search{?q}"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "/fotoweb/search", info.Services.Search)
	assert.Equal(t, "/fotoweb/renditions", info.Services.RenditionRequest)
	assert.Equal(t, "/fotoweb/search{?q}", info.SearchURL)

	// searchURL is optional; instances without one still decode so
	// missing-service detection can run.
	info, err = DecodeInstanceInfo([]byte(`{"services": {"rendition_request": "/fotoweb/renditions"}}`))
	require.NoError(t, err)
	assert.Equal(t, "/fotoweb/renditions", info.Services.RenditionRequest)

	info, err = DecodeInstanceInfo([]byte(`{"services": {}}`))
	require.NoError(t, err)
	assert.Empty(t, info.Services.RenditionRequest)

	_, err = DecodeInstanceInfo([]byte(`{}`))
	require.Error(t, err)
	assert.True(t, apierr.IsParse(err))
}

func TestDecodeCollection(t *testing.T) {
	t.Parallel()

	c, err := DecodeCollection([]byte(`{
		"name": "Inbox",
		"href": "/fotoweb/collections/9/",
		"data": "/fotoweb/data/c/9/",
		"type": "folder",
		"canMoveTo": true,
		"canUploadTo": true,
		"permissions": ["read", "write"]
	}`))
	require.NoError(t, err)
	assert.True(t, c.CanMoveTo)
	assert.True(t, c.CanUploadTo)
	assert.Equal(t, []string{"read", "write"}, c.Permissions)
}
