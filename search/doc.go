// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

/*
Package search builds Fotoware search expressions.

An [Expr] is an immutable, fluent builder: every method returns a new
expression, so partial expressions can be shared and extended freely.
Chained filters combine with AND; Or and Not compose expressions in other
ways.

	expr := search.New().Eq(search.FieldFileName, "*.png").
		Or(search.New().PixelHeight(500, 1024).FTS("sunset"))

	for asset, err := range tenant.SearchAssets(ctx, expr) {
		...
	}

String() renders the expression in Fotoware search syntax. Misuse, such as
combining uninitialized expressions or a range without bounds, is recorded
on the expression and surfaces from Err() before any request is made.
*/
package search
