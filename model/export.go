// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"errors"

	"github.com/redmer/go-fwapi/apierr"
)

// ImageExport holds the permanent locations of an exported image.
type ImageExport struct {
	Normal           string `json:"normal"`
	DoubleResolution string `json:"doubleResolution"`
	HighCompression  string `json:"highCompression"`
}

// DecodeImageExport unwraps an export-data envelope,
// `{"export": {"image": {...}}}`, into the image locations.
func DecodeImageExport(data []byte) (*ImageExport, error) {
	var outer struct {
		Export struct {
			Image *ImageExport `json:"image"`
		} `json:"export"`
	}
	if err := json.Unmarshal(data, &outer); err != nil {
		return nil, &apierr.ParseError{Resource: "image export", Err: err}
	}
	if outer.Export.Image == nil {
		return nil, &apierr.ParseError{
			Resource: "image export",
			Err:      errors.New("response carries no export.image member"),
		}
	}
	return outer.Export.Image, nil
}
