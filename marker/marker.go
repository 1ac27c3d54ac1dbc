// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

// Package marker assigns complete text ranges to Python syntax trees.
//
// Parsers report only start positions, report them as byte offsets, and
// misreport them outright for several node kinds. The marker runs two
// passes over a tree to repair this. FixStartPositions rewrites every
// start to a character column, adopting tokenizer positions for string
// literals and child positions for the operator forms known to inherit
// bad starts. MarkEndPositions then reconstructs every end position by
// sweeping the tree right to left: each node claims the tokens between
// its start and the start of whatever follows it, trims the trailing
// tokens that belong to enclosing syntax, and takes the end of the last
// token that remains.
//
// End marking never fails. A node whose tokens turn out inconsistent
// with its reported start is given the degenerate one-character range
// and recorded in the pass's Report:
//
//	report, err := marker.Mark(tree, toks, src)
//	if err != nil {
//	   log.Fatalf("Mark failed: %v", err)
//	}
//	if !report.Ok() {
//	   log.Printf("%d degenerate ranges", len(report.Incidents))
//	}
//
// The token slice must carry character columns, as produced by
// pytoken.CharColumns.
package marker

import (
	"fmt"
	"log/slog"

	"github.com/xilione/thonny"
	"github.com/xilione/thonny/pyast"
	"github.com/xilione/thonny/pytoken"
)

// An Incident records one node whose end position could not be
// reconstructed from its tokens and was assigned the degenerate
// one-character range instead.
type Incident struct {
	Node   pyast.Positioned // the affected node
	Range  thonny.TextRange // the degenerate range assigned
	Reason string           // what went wrong
}

// A Report summarizes an end-marking pass.
type Report struct {
	Incidents []Incident
}

// Ok reports whether every end position was reconstructed from tokens,
// with no degenerate fallbacks.
func (r *Report) Ok() bool { return len(r.Incidents) == 0 }

// A Marker assigns text ranges to syntax trees. The zero value is ready
// to use and logs nothing.
type Marker struct {
	// Log, when non-nil, receives a warning for every degenerate
	// fallback taken during end marking.
	Log *slog.Logger
}

// Mark completes the range of every positioned node under root, running
// FixStartPositions and then MarkEndPositions. The error, if any, comes
// from the start pass; the end pass always completes.
func (m *Marker) Mark(root pyast.Node, toks []pytoken.Token, src *thonny.Source) (*Report, error) {
	if err := m.FixStartPositions(root, toks, src); err != nil {
		return nil, err
	}
	return m.MarkEndPositions(root, toks, src), nil
}

// Mark completes the range of every positioned node under root using a
// zero Marker.
func Mark(root pyast.Node, toks []pytoken.Token, src *thonny.Source) (*Report, error) {
	var m Marker
	return m.Mark(root, toks, src)
}

// FixStartPositions rewrites the start position of every positioned
// node under root from a byte column to a character column, repairing
// along the way the starts the parser is known to misreport: string
// literals take the position of their token, and expression statements,
// binary operations, calls, attributes and subscripts that appear to
// begin after their own first operand take the operand's position.
// Children are fixed before parents so that adopted positions are
// already correct. An error is returned when a start cannot be decoded
// or the tree does not line up with the token stream.
func (m *Marker) FixStartPositions(root pyast.Node, toks []pytoken.Token, src *thonny.Source) error {
	f := &fixer{src: src}
	for _, tok := range toks {
		if tok.Type == pytoken.Str {
			f.strings = append(f.strings, tok)
		}
	}
	return f.fix(root)
}

// A fixer carries the start-correction state: the source for column
// conversion and the queue of not yet claimed string tokens.
type fixer struct {
	src     *thonny.Source
	strings []pytoken.Token
}

func (f *fixer) fix(n pyast.Node) error {
	for _, c := range pyast.OrderedChildren(n) {
		if err := f.fix(c); err != nil {
			return err
		}
	}
	p, ok := n.(pyast.Positioned)
	if !ok {
		return nil
	}
	r := p.Range()
	switch t := n.(type) {
	case *pyast.Str, *pyast.Bytes:
		// The parser reports triple-quoted literals at the wrong
		// place; the tokenizer has the real position.
		return f.adoptStringToken(p)
	case *pyast.ExprStmt:
		if isStringLiteral(t.Value) {
			r.Start = t.Value.Range().Start
			return nil
		}
	case *pyast.Attribute:
		if isStringLiteral(t.Value) {
			// Shares the misreported start of its literal child.
			r.Start = t.Value.Range().Start
			return nil
		}
		if r.Start.After(t.Value.Range().Start) {
			r.Start = t.Value.Range().Start
			return nil
		}
	case *pyast.BinOp:
		if r.Start.After(t.Left.Range().Start) {
			r.Start = t.Left.Range().Start
			return nil
		}
	case *pyast.Call:
		if r.Start.After(t.Func.Range().Start) {
			r.Start = t.Func.Range().Start
			return nil
		}
	case *pyast.Subscript:
		if r.Start.After(t.Value.Range().Start) {
			r.Start = t.Value.Range().Start
			return nil
		}
	}
	col, err := f.src.CharColumnUTF8(r.Start.Line, r.Start.Col)
	if err != nil {
		return fmt.Errorf("start of %T: %w", n, err)
	}
	r.Start.Col = col
	return nil
}

func (f *fixer) adoptStringToken(p pyast.Positioned) error {
	if len(f.strings) == 0 {
		return fmt.Errorf("no string token left for %T at %v", p, p.Range().Start)
	}
	p.Range().Start = f.strings[0].Start
	f.strings = f.strings[1:]
	return nil
}

func isStringLiteral(e pyast.Expr) bool {
	switch e.(type) {
	case *pyast.Str, *pyast.Bytes:
		return true
	}
	return false
}

// MarkEndPositions assigns an end position to every positioned node
// under root. Start positions must already be character-correct. Nodes
// whose token windows turn out inconsistent receive the degenerate
// one-character range and are recorded in the returned Report; the
// pass itself always completes.
func (m *Marker) MarkEndPositions(root pyast.Node, toks []pytoken.Token, src *thonny.Source) *Report {
	e := &ender{log: m.Log}
	for _, tok := range toks {
		if tok.Text != "" {
			e.sig = append(e.sig, tok)
		}
	}
	e.mark(root, window{0, len(e.sig)}, src.End())
	return &e.report
}

// An ender carries the end-marking state: the significant tokens, the
// incident report and the optional log.
type ender struct {
	log    *slog.Logger
	sig    []pytoken.Token // tokens with text, position sorted
	report Report
}

// mark assigns n's end and then its descendants' ends, siblings right
// to left. horizon is the start of the nearest node known to follow n,
// or the end of source. The return value is the horizon for n's left
// sibling: n's own start when n is positioned, otherwise whatever the
// children propagated.
func (e *ender) mark(n pyast.Node, w window, horizon thonny.Pos) thonny.Pos {
	p, positioned := n.(pyast.Positioned)
	if positioned {
		w = e.extract(w, p.Range().Start, horizon)
		e.setEnd(p, &w)
	}
	kids := pyast.OrderedChildren(n)
	for i := len(kids) - 1; i >= 0; i-- {
		horizon = e.mark(kids[i], w, horizon)
	}
	if positioned {
		return p.Range().Start
	}
	return horizon
}

// extract narrows w to the tokens lying fully between start and
// horizon. Tokens are position sorted, so the result is a contiguous
// subrange.
func (e *ender) extract(w window, start, horizon thonny.Pos) window {
	lo, hi := w.lo, w.hi
	for lo < hi && e.sig[lo].Start.Before(start) {
		lo++
	}
	for hi > lo && horizon.Before(e.sig[hi-1].End) {
		hi--
	}
	return window{lo, hi}
}

// setEnd trims w for p's kind and assigns p's end position, falling
// back to the one-character degenerate range when the window is
// inconsistent. The trimmed window is what p's children extract from,
// whether or not the trim succeeded.
func (e *ender) setEnd(p pyast.Positioned, w *window) {
	err := e.trimAndSet(p, w)
	if err == nil {
		return
	}
	r := p.Range()
	r.End = thonny.Pos{Line: r.Start.Line, Col: r.Start.Col + 1}
	e.report.Incidents = append(e.report.Incidents, Incident{
		Node:   p,
		Range:  *r,
		Reason: err.Error(),
	})
	if e.log != nil {
		e.log.Warn("degenerate node range",
			"node", fmt.Sprintf("%T", p),
			"start", r.Start.String(),
			"reason", err.Error())
	}
}
