// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrSyntax reports a structurally invalid expression, such as combining
// uninitialized expressions or a range without bounds.
var ErrSyntax = errors.New("invalid search expression")

// Expr is an immutable search expression. The zero value is the empty
// expression; every method returns a new Expr, so partially built
// expressions can be shared safely.
type Expr struct {
	root *node
	err  error
}

// New returns the empty search expression.
func New() Expr {
	return Expr{}
}

// FieldID names a numbered custom metadata field for Eq, Empty and Range.
func FieldID(id int) string {
	return strconv.Itoa(id)
}

// Err reports the first structural error recorded while building.
func (e Expr) Err() error {
	return e.err
}

// String renders the expression in Fotoware search syntax. The empty
// expression renders as "".
func (e Expr) String() string {
	if e.root == nil {
		return ""
	}
	return e.root.String()
}

// append ANDs a new clause onto the expression, carrying errors forward.
func (e Expr) append(clause *node) Expr {
	if e.err != nil {
		return e
	}
	if e.root == nil {
		return Expr{root: clause}
	}
	return Expr{root: and(e.root, clause)}
}

// FTS adds a full-text search across all metadata and document running
// text, like that in a PDF file.
func (e Expr) FTS(text string) Expr {
	return e.append(value(text))
}

// Eq adds an exact field value match.
func (e Expr) Eq(field_, val string) Expr {
	return e.append(fieldEq(field(field_), value(val)))
}

// Empty matches assets where the field has no value. The index manager
// must index empty values for the field, or results may be incomplete.
func (e Expr) Empty(field_ string) Expr {
	return e.append(fieldEq(field(field_), value("")))
}

// Range adds a ranged field value match, inclusive on both ends.
func (e Expr) Range(field_, from, to string) Expr {
	return e.append(fieldEq(field(field_), valRange(value(from), value(to))))
}

// AssetType filters for a document type, e.g. model.DoctypeImage.
func (e Expr) AssetType(doctype string) Expr {
	return e.Eq(FieldAssetType, doctype)
}

// ColorSpace filters for a color space.
func (e Expr) ColorSpace(cs string) Expr {
	return e.Eq(FieldColorSpace, cs)
}

// Orientation filters for an image orientation.
func (e Expr) Orientation(o string) Expr {
	return e.Eq(FieldImageOrientation, o)
}

// Modification filters on file modification time. A zero from or to leaves
// that bound open; both zero is an error.
func (e Expr) Modification(from, to time.Time) Expr {
	switch {
	case !from.IsZero() && !to.IsZero():
		return e.append(fieldEq(field(FieldFileModification), valRange(timeValue(from), timeValue(to))))
	case !from.IsZero():
		return e.append(fieldEq(field(FieldFileModification+"f"), timeValue(from)))
	case !to.IsZero():
		return e.append(fieldEq(field(FieldFileModification+"t"), timeValue(to)))
	}
	return e.fail("time range must have a lower bound, an upper bound or both")
}

// FileSize filters on file size in bytes. A negative min or max leaves
// that bound open; both negative is an error.
func (e Expr) FileSize(min, max int) Expr {
	return e.intMinMax(FieldFileSize, min, max)
}

// PixelWidth filters on image pixel width. A negative min or max leaves
// that bound open; both negative is an error.
func (e Expr) PixelWidth(min, max int) Expr {
	return e.intMinMax(FieldPixelWidth, min, max)
}

// PixelHeight filters on image pixel height. A negative min or max leaves
// that bound open; both negative is an error.
func (e Expr) PixelHeight(min, max int) Expr {
	return e.intMinMax(FieldPixelHeight, min, max)
}

func (e Expr) intMinMax(field_ string, min, max int) Expr {
	switch {
	case min >= 0 && max >= 0:
		return e.append(fieldEq(field(field_), valRange(value(strconv.Itoa(min)), value(strconv.Itoa(max)))))
	case min >= 0:
		return e.append(fieldEq(field(field_+"f"), value(strconv.Itoa(min))))
	case max >= 0:
		return e.append(fieldEq(field(field_+"t"), value(strconv.Itoa(max))))
	}
	return e.fail("numeric range must have a lower bound, an upper bound or both")
}

// And combines two expressions; both must match.
func (e Expr) And(other Expr) Expr {
	if combined, err := combinable(e, other); err != nil {
		return combined
	}
	return Expr{root: and(e.root, other.root)}
}

// Or combines two expressions; either may match.
func (e Expr) Or(other Expr) Expr {
	if combined, err := combinable(e, other); err != nil {
		return combined
	}
	return Expr{root: or(e.root, other.root)}
}

// Not negates the expression built so far.
func (e Expr) Not() Expr {
	if e.err != nil {
		return e
	}
	if e.root == nil {
		return e.fail("cannot negate an uninitialized expression")
	}
	return Expr{root: not(e.root)}
}

func (e Expr) fail(msg string) Expr {
	if e.err != nil {
		return e
	}
	return Expr{root: e.root, err: fmt.Errorf("%w: %s", ErrSyntax, msg)}
}

// combinable checks that both operands of a boolean combination carry no
// errors and are initialized.
func combinable(a, b Expr) (Expr, error) {
	if a.err != nil {
		return a, a.err
	}
	if b.err != nil {
		return b, b.err
	}
	if a.root == nil || b.root == nil {
		failed := a.fail("cannot combine an uninitialized expression")
		return failed, failed.err
	}
	return Expr{}, nil
}
