// Package query locates nodes of a marked syntax tree by source range.
//
// The functions here expect a tree whose ranges were completed by the
// marker package; a tree fresh from a parser carries no end positions
// and matches nothing. Given the range of an editor selection, the
// expression it selects exactly is found with
//
//	expr := query.ExactExpression(tree, sel)
//
// and the innermost node around an insertion point with
//
//	node := query.SmallestContaining(tree, sel)
//
// Both return nil when nothing matches. The text a located node covers
// is recovered with Source.Extract on its range.
package query

import (
	"github.com/xilione/thonny"
	"github.com/xilione/thonny/pyast"
)

// SmallestContaining returns the innermost positioned node whose range
// wholly contains r, or nil if there is none. Children are searched
// before their parents; among matching children the first in grammar
// order wins.
func SmallestContaining(root pyast.Node, r thonny.TextRange) pyast.Positioned {
	for _, c := range pyast.Children(root) {
		if n := SmallestContaining(c, r); n != nil {
			return n
		}
	}
	if p, ok := root.(pyast.Positioned); ok && p.Range().Contains(r) {
		return p
	}
	return nil
}

// ExactExpression returns the outermost expression whose range is
// exactly r, or nil if there is none. Statements and structural nodes
// never match, but their children are still searched.
func ExactExpression(root pyast.Node, r thonny.TextRange) pyast.Expr {
	if e, ok := root.(pyast.Expr); ok && *e.Range() == r {
		return e
	}
	for _, c := range pyast.Children(root) {
		if e := ExactExpression(c, r); e != nil {
			return e
		}
	}
	return nil
}

// Contains reports whether target is a proper descendant of root. Nodes
// are compared by identity, not by position.
func Contains(root, target pyast.Node) bool {
	for _, c := range pyast.Children(root) {
		if c == target || Contains(c, target) {
			return true
		}
	}
	return false
}

// HasAncestor reports whether some node of type T under root properly
// contains target.
func HasAncestor[T pyast.Node](root, target pyast.Node) bool {
	found := false
	pyast.Walk(root, func(n pyast.Node) bool {
		if found {
			return false
		}
		if _, ok := n.(T); ok && Contains(n, target) {
			found = true
			return false
		}
		return true
	})
	return found
}
