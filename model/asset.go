// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"fmt"
)

// Document types an asset can have.
const (
	DoctypeImage    = "image"
	DoctypeMovie    = "movie"
	DoctypeAudio    = "audio"
	DoctypeDocument = "document"
	DoctypeGraphic  = "graphic"
	DoctypeGeneric  = "generic"
)

// Built-in metadata field names.
const (
	BuiltinTitle       = "title"
	BuiltinDescription = "description"
	BuiltinTags        = "tags"
	BuiltinNotes       = "notes"
	BuiltinStatus      = "status"
	BuiltinRating      = "rating"
)

// FieldValue holds a metadata field value, which the API returns as a
// string, a boolean, or a list of strings.
type FieldValue struct {
	value any
}

// NewFieldValue wraps a value for outgoing metadata. Accepts string, bool
// or []string.
func NewFieldValue(v any) FieldValue {
	return FieldValue{value: v}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.value = s
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		v.value = b
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		v.value = list
		return nil
	}
	return fmt.Errorf("field value is not a string, boolean or string list: %s", data)
}

// MarshalJSON implements json.Marshaler.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// Any returns the underlying value: string, bool or []string.
func (v FieldValue) Any() any {
	return v.value
}

// String returns the value as a string. List values render the first element.
func (v FieldValue) String() string {
	switch val := v.value.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case []string:
		if len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// Strings returns the value as a list. Scalar values yield a one-element list.
func (v FieldValue) Strings() []string {
	switch val := v.value.(type) {
	case []string:
		return val
	case string:
		return []string{val}
	}
	return nil
}

// BuiltinField is a built-in metadata field (title, description, etc.)
type BuiltinField struct {
	Field    string     `json:"field"`
	Required bool       `json:"required"`
	Value    FieldValue `json:"value"`
}

// MetadataField is any metadata field (that is, not built-in)
type MetadataField struct {
	Value FieldValue `json:"value"`
}

// ImageAttributes carries pixel-level properties of an image asset.
type ImageAttributes struct {
	PixelWidth  int     `json:"pixelwidth"`
	PixelHeight int     `json:"pixelheight"`
	Resolution  float64 `json:"resolution"`
	FlipMirror  int     `json:"flipmirror"`
	Rotation    int     `json:"rotation"`
	ColorSpace  string  `json:"colorspace"`
}

// Attributes groups optional per-doctype attribute blocks.
type Attributes struct {
	ImageAttributes *ImageAttributes `json:"imageattributes,omitempty"`
}

// Asset is a file in the asset library, like a photo, video, ZIP file, etc.
type Asset struct {
	Href           string `json:"href"`
	PhysicalFileID string `json:"physicalFileId"`

	Filename string `json:"filename"`
	Filesize int64  `json:"filesize"`
	Doctype  string `json:"doctype"`

	Created  Timestamp `json:"created,omitzero"`
	Modified Timestamp `json:"modified,omitzero"`

	ArchiveID int `json:"archiveId"`

	BuiltinFields []BuiltinField           `json:"builtinFields,omitempty"`
	Metadata      map[string]MetadataField `json:"metadata,omitempty"`
	Attributes    *Attributes              `json:"attributes,omitempty"`

	Previews     []AssetPreview   `json:"previews,omitempty"`
	PreviewToken string           `json:"previewToken,omitempty"`
	Renditions   []AssetRendition `json:"renditions,omitempty"`
}

// Builtin returns the value of a built-in metadata field (title,
// description, ...) and whether it is present.
func (a *Asset) Builtin(field string) (FieldValue, bool) {
	for _, f := range a.BuiltinFields {
		if f.Field == field {
			return f.Value, true
		}
	}
	return FieldValue{}, false
}

// MetadataValue returns the value of a numbered custom metadata field and
// whether it is present.
func (a *Asset) MetadataValue(field int) (FieldValue, bool) {
	f, ok := a.Metadata[fmt.Sprintf("%d", field)]
	if !ok {
		return FieldValue{}, false
	}
	return f.Value, true
}

// CanBeExported reports whether the export service accepts this asset.
// Only image assets can be exported.
func (a *Asset) CanBeExported() bool {
	return a.Doctype == DoctypeImage
}

// RenditionFilter constrains FindRendition. Zero-valued fields do not
// constrain; Size, Width and Height are minimums.
type RenditionFilter struct {
	Original *bool
	Profile  string
	Size     int
	Width    int
	Height   int
}

// FindRendition returns the first rendition that satisfies the filter, or
// nil. A size constraint matches against the rendition's shortest side.
func (a *Asset) FindRendition(f RenditionFilter) *AssetRendition {
	for i := range a.Renditions {
		r := &a.Renditions[i]
		if f.Profile != "" && r.Profile != f.Profile {
			continue
		}
		if f.Original != nil && r.Original != *f.Original {
			continue
		}
		if f.Size > min(r.Width, r.Height) {
			continue
		}
		if f.Width > r.Width || f.Height > r.Height {
			continue
		}
		return r
	}
	return nil
}

// PreviewFilter constrains FindPreview. Zero-valued fields do not
// constrain; Size, Width and Height are minimums.
type PreviewFilter struct {
	Square *bool
	Size   int
	Width  int
	Height int
}

// FindPreview returns the first preview that satisfies the filter, or nil.
func (a *Asset) FindPreview(f PreviewFilter) *AssetPreview {
	for i := range a.Previews {
		p := &a.Previews[i]
		if f.Square != nil && p.Square != *f.Square {
			continue
		}
		if f.Size > p.MaxSide() {
			continue
		}
		if f.Width > p.Width || f.Height > p.Height {
			continue
		}
		return p
	}
	return nil
}
