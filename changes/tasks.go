// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package changes

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/redmer/go-fwapi/conn"
	"github.com/redmer/go-fwapi/model"
)

// metadataUpdate is the wire form of an asset metadata PATCH.
type metadataUpdate struct {
	Metadata map[string]model.MetadataField `json:"metadata"`
}

// assetRef addresses one asset in a move request.
type assetRef struct {
	Href string `json:"href"`
}

// moveRequest is the wire form of a backgrounded move.
type moveRequest struct {
	Destination string     `json:"destination"`
	Assets      []assetRef `json:"assets"`
}

// uploadRequest initiates a batch upload.
type uploadRequest struct {
	Filename    string `json:"filename"`
	Destination string `json:"destination"`
	FileSize    int    `json:"fileSize"`
	HasXMP      bool   `json:"hasXmp"`
}

// run sends one queued change. Backgrounded changes return a submittedTask
// pointing at their progress resource.
func (m *Manager) run(ctx context.Context, tk *task) (*submittedTask, error) {
	switch tk.kind {
	case kindMetadata:
		return nil, m.patchMetadata(ctx, tk)
	case kindMove:
		return m.move(ctx, tk)
	case kindUpload:
		return m.upload(ctx, tk)
	}
	return nil, fmt.Errorf("unknown change kind %d", tk.kind)
}

func (m *Manager) patchMetadata(ctx context.Context, tk *task) error {
	update := metadataUpdate{Metadata: make(map[string]model.MetadataField, len(tk.fields))}
	for field, value := range tk.fields {
		update.Metadata[field] = model.MetadataField{Value: value}
	}

	_, err := m.api.Patch(ctx, tk.assetHref, update, conn.WithContentType(assetUpdateType))
	return err
}

func (m *Manager) move(ctx context.Context, tk *task) (*submittedTask, error) {
	payload := moveRequest{
		Destination: tk.destination,
		Assets:      []assetRef{{Href: tk.assetHref}},
	}
	resp, err := m.api.Post(ctx, backgroundTasksPath, payload, conn.WithContentType(moveRequestType))
	if err != nil {
		return nil, err
	}

	ack, err := model.DecodeBackgroundResponse(resp.Body)
	if err != nil {
		return nil, err
	}
	statusPath := ack.Location
	if statusPath == "" {
		statusPath = resp.Header.Get("Location")
	}
	return &submittedTask{id: tk.id, kind: kindMove, statusPath: statusPath}, nil
}

func (m *Manager) upload(ctx context.Context, tk *task) (*submittedTask, error) {
	resp, err := m.api.Post(ctx, uploadsPath, uploadRequest{
		Filename:    tk.filename,
		Destination: tk.destination,
		FileSize:    len(tk.contents),
	})
	if err != nil {
		return nil, err
	}
	info, err := model.DecodeBatchUploadInfo(resp.Body)
	if err != nil {
		return nil, err
	}

	chunkSize := info.ChunkSize
	if chunkSize <= 0 {
		chunkSize = len(tk.contents)
	}
	for i := 0; i < info.NumChunks; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, len(tk.contents))
		body, contentType, err := chunkBody(tk.filename, tk.contents[start:end])
		if err != nil {
			return nil, err
		}

		path := fmt.Sprintf("%s/%s/chunks/%d", uploadsPath, info.UploadID, i)
		if _, err := m.api.PostBytes(ctx, path, contentType, body); err != nil {
			return nil, err
		}
	}

	return &submittedTask{
		id:         tk.id,
		kind:       kindUpload,
		statusPath: fmt.Sprintf("%s/%s/status", uploadsPath, info.UploadID),
	}, nil
}

// chunkBody wraps one chunk of file contents in a multipart form, as the
// upload service expects.
func chunkBody(filename string, data []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("chunk", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
