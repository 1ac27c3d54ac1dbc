// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

package marker_test

import (
	"flag"
	"strings"
	"testing"

	"github.com/xilione/thonny"
	"github.com/xilione/thonny/internal/testutil"
	"github.com/xilione/thonny/marker"
	"github.com/xilione/thonny/pyast"
	"github.com/xilione/thonny/pytoken"
)

var (
	doStress    = flag.Bool("stress-test", false, "Run deep nesting stress test")
	stressDepth = flag.Int("stress-depth", 2000, "Nesting depth for the stress test")
)

// A lineBuilder accumulates a one-line program and its token stream in
// step, so that source, tokens and tree cannot drift apart.
type lineBuilder struct {
	sb   strings.Builder
	toks []pytoken.Token
	col  int
}

// put appends one token and its text.
func (b *lineBuilder) put(typ pytoken.Type, text string) {
	b.sb.WriteString(text)
	b.toks = append(b.toks, pytoken.Token{Type: typ, Text: text,
		Start: thonny.Pos{Line: 1, Col: b.col},
		End:   thonny.Pos{Line: 1, Col: b.col + len(text)},
	})
	b.col += len(text)
}

// space appends a space with no token.
func (b *lineBuilder) space() {
	b.sb.WriteString(" ")
	b.col++
}

// TestStress marks programs whose nesting depth and width far exceed
// anything the unit fixtures cover, and checks that each marking is
// clean and structurally consistent.
func TestStress(t *testing.T) {
	if !*doStress {
		t.Skip("Skipping stress test because --stress-test is false")
	}
	d := *stressDepth

	t.Run("NestedCalls", func(t *testing.T) {
		// f(f(f(...(x)...)))
		var b lineBuilder
		for i := 0; i < d; i++ {
			b.put(pytoken.Name, "f")
			b.put(pytoken.Op, "(")
		}
		b.put(pytoken.Name, "x")
		var inner pyast.Expr = &pyast.Name{Span: pyast.At(1, 2*d), ID: "x"}
		for i := d - 1; i >= 0; i-- {
			b.put(pytoken.Op, ")")
			inner = &pyast.Call{
				Span: pyast.At(1, 2*i),
				Func: &pyast.Name{Span: pyast.At(1, 2*i), ID: "f"},
				Args: []pyast.Expr{inner},
			}
		}
		checkStressMark(t, &b, inner)
	})

	t.Run("AttributeChain", func(t *testing.T) {
		// a.b.b.b...
		var b lineBuilder
		b.put(pytoken.Name, "a")
		var inner pyast.Expr = &pyast.Name{Span: pyast.At(1, 0), ID: "a"}
		for i := 0; i < d; i++ {
			b.put(pytoken.Op, ".")
			b.put(pytoken.Name, "b")
			inner = &pyast.Attribute{Span: pyast.At(1, 0), Value: inner, Attr: "b"}
		}
		checkStressMark(t, &b, inner)
	})

	t.Run("WideCall", func(t *testing.T) {
		// f(x, x, ..., x)
		var b lineBuilder
		b.put(pytoken.Name, "f")
		b.put(pytoken.Op, "(")
		args := make([]pyast.Expr, d)
		for i := 0; i < d; i++ {
			if i > 0 {
				b.put(pytoken.Op, ",")
				b.space()
			}
			args[i] = &pyast.Name{Span: pyast.At(1, b.col), ID: "x"}
			b.put(pytoken.Name, "x")
		}
		b.put(pytoken.Op, ")")
		call := &pyast.Call{
			Span: pyast.At(1, 0),
			Func: &pyast.Name{Span: pyast.At(1, 0), ID: "f"},
			Args: args,
		}
		checkStressMark(t, &b, call)
	})
}

// checkStressMark wraps the expression in a statement, marks the tree
// and verifies that the marking is clean and structurally consistent.
func checkStressMark(t *testing.T, b *lineBuilder, expr pyast.Expr) {
	t.Helper()
	b.put(pytoken.Newline, "\n")
	tree := &pyast.Module{Body: []pyast.Stmt{
		&pyast.ExprStmt{Span: pyast.At(1, 0), Value: expr},
	}}

	src, err := thonny.NewSource(b.sb.String(), "utf-8")
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	report, err := marker.Mark(tree, b.toks, src)
	if err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if !report.Ok() {
		t.Fatalf("Mark took %d degenerate fallbacks, first: %s",
			len(report.Incidents), report.Incidents[0].Reason)
	}

	t.Logf("Checked %d positioned nodes", testutil.CheckRanges(t, tree))
}
