// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/redmer/go-fwapi/apierr"
)

//go:embed data/archive.schema.json data/asset.schema.json data/collection.schema.json data/instance-info.schema.json data/page.schema.json
var embeddedSchemaFS embed.FS

// DecodeArchive validates raw JSON bytes against the archive schema and
// unmarshals them into an Archive.
func DecodeArchive(data []byte) (*Archive, error) {
	return decode[Archive](data, "data/archive.schema.json", "archive")
}

// DecodeAsset validates raw JSON bytes against the asset schema and
// unmarshals them into an Asset.
func DecodeAsset(data []byte) (*Asset, error) {
	return decode[Asset](data, "data/asset.schema.json", "asset")
}

// DecodeCollection validates raw JSON bytes against the collection schema
// and unmarshals them into a Collection.
func DecodeCollection(data []byte) (*Collection, error) {
	return decode[Collection](data, "data/collection.schema.json", "collection")
}

// DecodeInstanceInfo validates raw JSON bytes against the instance-info
// schema and unmarshals them into an InstanceInfo.
func DecodeInstanceInfo(data []byte) (*InstanceInfo, error) {
	return decode[InstanceInfo](data, "data/instance-info.schema.json", "instance info")
}

// DecodePage validates one page of a paginated resource and returns its raw
// items and paging links. Some first pages nest the envelope under an
// "assets" member; DecodePage unwraps that before validating.
func DecodePage(data []byte) (*Page, error) {
	var outer struct {
		Assets json.RawMessage `json:"assets"`
	}
	if err := json.Unmarshal(data, &outer); err != nil {
		return nil, &apierr.ParseError{Resource: "page", Err: err}
	}
	if len(outer.Assets) > 0 && outer.Assets[0] == '{' {
		data = outer.Assets
	}
	return decode[Page](data, "data/page.schema.json", "page")
}

// decode is the validate-and-construct boundary: raw bytes in, typed record
// or ParseError out.
func decode[T any](data []byte, schemaFile, resource string) (*T, error) {
	if err := validateAgainstSchema(data, schemaFile); err != nil {
		return nil, &apierr.ParseError{Resource: resource, Err: err}
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &apierr.ParseError{Resource: resource, Err: err}
	}
	return &v, nil
}

// validateAgainstSchema validates data against a named embedded schema file.
func validateAgainstSchema(data []byte, schemaFile string) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("schema validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}
