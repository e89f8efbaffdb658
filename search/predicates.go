// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package search

// Ranged predicates allow ranged values.
const (
	FieldFileModification = "mt"
	FieldIPTCCreationTime = "it"
	FieldReleasedTime     = "rt"
	FieldCameraTime       = "ct"
	FieldFileSize         = "fs"
	FieldPixelHeight      = "ph"
	FieldPixelWidth       = "pw"
)

// Special predicates map to special file properties.
const (
	FieldFileName         = "fn"
	FieldDirectoryName    = "dn"
	FieldFullFilePath     = "fp"
	FieldAssetType        = "dt"
	FieldImageOrientation = "o"
	FieldColorSpace       = "cs"
)

// Image orientation values for FieldImageOrientation. Square images are
// simultaneously both portrait and landscape.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
	OrientationSquare    = "square"
)

// Color space values for FieldColorSpace.
const (
	ColorSpaceRGB       = "rgb"
	ColorSpaceCMYK      = "cmyk"
	ColorSpaceGrayscale = "grayscale"
)
