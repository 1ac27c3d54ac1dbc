// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

// Package cursor implements traversal over the structure of a marked
// syntax tree.
package cursor

import (
	"fmt"

	"github.com/xilione/thonny"
	"github.com/xilione/thonny/pyast"
	"github.com/xilione/thonny/query"
)

// Find traverses a sequential path into the structure of root, where
// path elements are as documented for the Cursor.Down method. This is
// a convenience wrapper for creating a cursor, applying path, and
// retrieving the node it lands on as type T.
func Find[T pyast.Node](root pyast.Node, path ...any) (T, error) {
	c := New(root).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	n, ok := c.Node().(T)
	if !ok {
		return result, fmt.Errorf("wrong node type %T", c.Node())
	}
	return n, nil
}

// Enclosing pops c upward until it rests on a node of type T, the
// current node included. It reports false and leaves c at its origin
// when no node on the path has that type.
func Enclosing[T pyast.Node](c *Cursor) (T, bool) {
	for {
		if n, ok := c.Node().(T); ok {
			return n, true
		}
		if c.AtOrigin() {
			break
		}
		c.Up()
	}
	var zero T
	return zero, false
}

// A Cursor is a pointer that navigates into the structure of a syntax
// tree.
type Cursor struct {
	org pyast.Node
	stk []pyast.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin pyast.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() pyast.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Node reports the current node under the cursor.
func (c *Cursor) Node() pyast.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes from the origin to the
// current location in c.
func (c *Cursor) Path() []pyast.Node {
	return append([]pyast.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting
// from the current node, where path elements are either integers
// (denoting offsets into the node's children), text ranges (denoting a
// descent to the innermost node containing the range), or functions
// (see below). If the path cannot be completely consumed, traversal
// stops and an error is recorded. Use Err to recover the error.
//
// If a path element is an integer, it resolves to an index into the
// current node's children in source order. Negative indices count
// backward from the end (-1 is last, -2 second last). An error is
// reported if the index is out of bounds.
//
// If a path element is a thonny.TextRange, the cursor descends child
// by child toward the innermost node whose subtree contains the range,
// recording structural nodes passed through along the way. An error is
// reported when the node the descent lands on does not itself contain
// the range.
//
// If a path element is a function, the function is executed and its
// result becomes the next node in the sequence. The function must have
// a signature
//
//	func(pyast.Node) (pyast.Node, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Node()
	for _, elt := range path {
		switch t := elt.(type) {
		case int:
			kids := pyast.OrderedChildren(cur)
			i, ok := fixChildBound(len(kids), t)
			if !ok {
				return c.setErrorf("child index %d out of bounds (n=%d)", i, len(kids))
			}
			cur = c.push(kids[i])

		case thonny.TextRange:
			for {
				kid, ok := childContaining(cur, t)
				if !ok {
					break
				}
				cur = c.push(kid)
			}
			if p, ok := cur.(pyast.Positioned); !ok || !p.Range().Contains(t) {
				return c.setErrorf("no node contains %v", t)
			}

		case func(pyast.Node) (pyast.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(n pyast.Node) pyast.Node { c.stk = append(c.stk, n); return n }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

// childContaining returns the first child of n, in source order, whose
// subtree has a positioned node containing r.
func childContaining(n pyast.Node, r thonny.TextRange) (pyast.Node, bool) {
	for _, kid := range pyast.OrderedChildren(n) {
		if query.SmallestContaining(kid, r) != nil {
			return kid, true
		}
	}
	return nil, false
}

func fixChildBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
