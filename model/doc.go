// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

/*
Package model defines the typed records returned by the Fotoware API and the
validate-and-construct boundary that produces them.

Each record kind has a Decode function (DecodeArchive, DecodeAsset,
DecodePage, ...) that takes raw response bytes, validates them against an
embedded JSON Schema, and unmarshals into the typed record. Validation
failures surface as [apierr.ParseError]: a contract violation between client
and server, never retried.

Records are immutable snapshots of server state at fetch time; the client
does not refresh them.
*/
package model
