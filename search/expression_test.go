// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpr_Rendering(t *testing.T) {
	t.Parallel()

	may12 := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	may12noon := time.Date(2024, 5, 12, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			name: "empty expression",
			expr: New(),
			want: "",
		},
		{
			name: "full text search",
			expr: New().FTS("sunset"),
			want: "sunset",
		},
		{
			name: "full text search quotes spaces",
			expr: New().FTS("golden hour"),
			want: `"golden hour"`,
		},
		{
			name: "field equality",
			expr: New().Eq(FieldFileName, "*.png"),
			want: "fn:*.png",
		},
		{
			name: "numbered field equality",
			expr: New().Eq(FieldID(80), "Jane"),
			want: "80:Jane",
		},
		{
			name: "empty field",
			expr: New().Empty(FieldID(120)),
			want: "120:",
		},
		{
			name: "chained filters combine with AND",
			expr: New().FTS("sunset").Eq(FieldFileName, "*.jpg"),
			want: "( sunset ) AND ( fn:*.jpg )",
		},
		{
			name: "value range",
			expr: New().Range(FieldID(80), "a", "f"),
			want: "80:a~~f",
		},
		{
			name: "pixel height range",
			expr: New().PixelHeight(500, 1024),
			want: "ph:500~~1024",
		},
		{
			name: "file size minimum only",
			expr: New().FileSize(1024, -1),
			want: "fsf:1024",
		},
		{
			name: "file size maximum only",
			expr: New().FileSize(-1, 4096),
			want: "fst:4096",
		},
		{
			name: "modification range of dates",
			expr: New().Modification(may12, may12.AddDate(0, 1, 0)),
			want: "mt:2024-05-12~~2024-06-12",
		},
		{
			name: "modification lower bound with time of day",
			expr: New().Modification(may12noon, time.Time{}),
			want: "mtf:2024-05-12T12:30",
		},
		{
			name: "asset type",
			expr: New().AssetType("image"),
			want: "dt:image",
		},
		{
			name: "orientation and colorspace",
			expr: New().Orientation(OrientationLandscape).ColorSpace(ColorSpaceRGB),
			want: "( o:landscape ) AND ( cs:rgb )",
		},
		{
			name: "explicit OR",
			expr: New().Eq(FieldFileName, "*.png").Or(New().Eq(FieldFileName, "*.gif")),
			want: "( fn:*.png ) OR ( fn:*.gif )",
		},
		{
			name: "explicit AND of built expressions",
			expr: New().FTS("beach").And(New().FTS("sunset")),
			want: "( beach ) AND ( sunset )",
		},
		{
			name: "negation",
			expr: New().Eq(FieldAssetType, "movie").Not(),
			want: "NOT ( dt:movie )",
		},
		{
			name: "nested composition",
			expr: New().Eq(FieldFileName, "*.png").Or(New().PixelHeight(500, 1024).FTS("example")),
			want: "( fn:*.png ) OR ( ( ph:500~~1024 ) AND ( example ) )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, tt.expr.Err())
			assert.Equal(t, tt.want, tt.expr.String())
		})
	}
}

func TestExpr_StructuralErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr Expr
	}{
		{"range without bounds", New().FileSize(-1, -1)},
		{"time range without bounds", New().Modification(time.Time{}, time.Time{})},
		{"negate uninitialized", New().Not()},
		{"OR with uninitialized operand", New().FTS("x").Or(New())},
		{"AND with uninitialized operand", New().And(New().FTS("x"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Error(t, tt.expr.Err())
			assert.ErrorIs(t, tt.expr.Err(), ErrSyntax)
		})
	}
}

func TestExpr_ErrorsPropagate(t *testing.T) {
	t.Parallel()

	// A recorded error survives further chaining.
	e := New().FileSize(-1, -1).FTS("more").Eq(FieldFileName, "*.png")
	require.Error(t, e.Err())
	assert.ErrorIs(t, e.Err(), ErrSyntax)
}

func TestExpr_Immutability(t *testing.T) {
	t.Parallel()

	base := New().FTS("beach")
	withPNG := base.Eq(FieldFileName, "*.png")
	withGIF := base.Eq(FieldFileName, "*.gif")

	assert.Equal(t, "beach", base.String())
	assert.Equal(t, "( beach ) AND ( fn:*.png )", withPNG.String())
	assert.Equal(t, "( beach ) AND ( fn:*.gif )", withGIF.String())
}
