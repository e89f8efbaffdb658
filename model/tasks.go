// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"

	"github.com/redmer/go-fwapi/apierr"
)

// Statuses of a server-side background task or batch upload.
const (
	TaskPending    = "pending"
	TaskInProgress = "inProgress"
	TaskDone       = "done"
	TaskFailed     = "failed"

	// UploadAwaitingData is reported for a batch upload whose chunks have
	// not all arrived yet.
	UploadAwaitingData = "awaitingData"
)

// BackgroundResponse acknowledges a move or other backgrounded request.
// Location is where its progress can be polled.
type BackgroundResponse struct {
	MaxInterval int    `json:"maxInterval"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

// TaskInfo summarizes a background task.
type TaskInfo struct {
	Status   string `json:"status"`
	Type     string `json:"type"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
	ID       string `json:"id"`
}

// JobResult is one outcome of a finished background job.
type JobResult struct {
	Href                    string   `json:"href"`
	Done                    bool     `json:"done"`
	ResultHref              string   `json:"result-href"`
	ResultCollectionCreated bool     `json:"result-collection-created"`
	ResultCollectionHref    string   `json:"result-collection-href"`
	ChangedThumbnailFields  []string `json:"changed-thumbnailFields"`
	OriginalRemoved         bool     `json:"original-removed"`
	ResultFilename          string   `json:"result-filename"`
}

// JobInfo reports the progress of a background job.
type JobInfo struct {
	Status  string      `json:"status"`
	Updates int         `json:"updates"`
	Result  []JobResult `json:"result,omitempty"`
}

// TaskStatus is the progress report behind a BackgroundResponse location.
type TaskStatus struct {
	Job  JobInfo  `json:"job"`
	Task TaskInfo `json:"task"`
}

// BatchUploadInfo acknowledges a batch upload request and tells the client
// how to chunk the file contents.
type BatchUploadInfo struct {
	UploadID  string `json:"upload_id"`
	ChunkSize int    `json:"chunkSize"`
	NumChunks int    `json:"numChunks"`
}

// BatchUploadError describes why a batch upload failed.
type BatchUploadError struct {
	Value   string `json:"value"`
	Message string `json:"message"`
}

// BatchUploadResult locates the asset created by a finished batch upload.
type BatchUploadResult struct {
	AssetURL     string `json:"assetUrl"`
	AssetDetails string `json:"assetDetails"`
}

// BatchUploadStatus reports the progress of a batch upload.
type BatchUploadStatus struct {
	Status string             `json:"status"`
	Result *BatchUploadResult `json:"result,omitempty"`
	Error  *BatchUploadError  `json:"error,omitempty"`
}

// DecodeBackgroundResponse unmarshals a backgrounded-request acknowledgement.
func DecodeBackgroundResponse(data []byte) (*BackgroundResponse, error) {
	return decodeJSON[BackgroundResponse](data, "background response")
}

// DecodeTaskStatus unmarshals a background task progress report.
func DecodeTaskStatus(data []byte) (*TaskStatus, error) {
	return decodeJSON[TaskStatus](data, "task status")
}

// DecodeBatchUploadInfo unmarshals a batch upload acknowledgement.
func DecodeBatchUploadInfo(data []byte) (*BatchUploadInfo, error) {
	return decodeJSON[BatchUploadInfo](data, "batch upload info")
}

// DecodeBatchUploadStatus unmarshals a batch upload progress report.
func DecodeBatchUploadStatus(data []byte) (*BatchUploadStatus, error) {
	return decodeJSON[BatchUploadStatus](data, "batch upload status")
}

// decodeJSON unmarshals task bookkeeping records, which have no schema of
// their own; decoding failures still surface as ParseError.
func decodeJSON[T any](data []byte, resource string) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &apierr.ParseError{Resource: resource, Err: err}
	}
	return &v, nil
}
