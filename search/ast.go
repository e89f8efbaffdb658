// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"fmt"
	"strings"
	"time"
)

// nodeKind enumerates the abstract syntax tree node types of a search
// expression. A node is either a terminal holding a literal (value, field)
// or an operator over child nodes.
type nodeKind int

const (
	kindValue nodeKind = iota
	kindField
	kindFieldEq
	kindValRange
	kindNot
	kindAnd
	kindOr
)

// node is one AST node. Terminals use lit; operators use left and right.
type node struct {
	kind  nodeKind
	lit   string
	left  *node
	right *node
}

// String renders the subtree in Fotoware search syntax.
func (n *node) String() string {
	switch n.kind {
	case kindValue, kindField:
		return n.lit
	case kindValRange:
		return fmt.Sprintf("%s~~%s", n.left, n.right)
	case kindFieldEq:
		return fmt.Sprintf("%s:%s", n.left, n.right)
	case kindNot:
		return fmt.Sprintf("NOT ( %s )", n.left)
	case kindAnd:
		return fmt.Sprintf("( %s ) AND ( %s )", n.left, n.right)
	case kindOr:
		return fmt.Sprintf("( %s ) OR ( %s )", n.left, n.right)
	}
	return ""
}

// value creates a value terminal, quoted when it contains spaces.
func value(v string) *node {
	if strings.Contains(v, " ") {
		v = `"` + v + `"`
	}
	return &node{kind: kindValue, lit: v}
}

// timeValue creates a value terminal from a timestamp. Midnight-exact
// values render as plain dates.
func timeValue(t time.Time) *node {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return &node{kind: kindValue, lit: t.Format("2006-01-02")}
	}
	return &node{kind: kindValue, lit: t.Format("2006-01-02T15:04")}
}

// field creates a field terminal.
func field(name string) *node {
	return &node{kind: kindField, lit: name}
}

// valRange creates a ranged value.
func valRange(from, to *node) *node {
	return &node{kind: kindValRange, left: from, right: to}
}

// fieldEq creates a field-matches-value expression.
func fieldEq(f, v *node) *node {
	return &node{kind: kindFieldEq, left: f, right: v}
}

// not negates an expression.
func not(n *node) *node {
	return &node{kind: kindNot, left: n}
}

// and combines two expressions; both must match.
func and(lhs, rhs *node) *node {
	return &node{kind: kindAnd, left: lhs, right: rhs}
}

// or combines two expressions; either may match.
func or(lhs, rhs *node) *node {
	return &node{kind: kindOr, left: lhs, right: rhs}
}
