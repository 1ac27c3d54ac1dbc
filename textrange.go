package thonny

import "fmt"

// A Pos describes a location in source text.
type Pos struct {
	Line int // line number, 1-based
	Col  int // character offset in line, 0-based
}

// Before reports whether p precedes q in source order.
func (p Pos) Before(q Pos) bool {
	return p.Line < q.Line || p.Line == q.Line && p.Col < q.Col
}

// After reports whether p follows q in source order.
func (p Pos) After(q Pos) bool { return q.Before(p) }

// String renders p in the line.column form used by editor text indices.
func (p Pos) String() string { return fmt.Sprintf("%d.%d", p.Line, p.Col) }

// A TextRange describes a contiguous region of source text from Start
// (inclusive) to End (exclusive).
type TextRange struct {
	Start Pos // first character of the region
	End   Pos // position just past the region
}

// Contains reports whether r wholly encloses s. A range contains itself,
// and an empty range positioned on either boundary of r is contained.
func (r TextRange) Contains(s TextRange) bool {
	return !s.Start.Before(r.Start) && !r.End.Before(s.End)
}

func (r TextRange) String() string { return fmt.Sprintf("%v-%v", r.Start, r.End) }
