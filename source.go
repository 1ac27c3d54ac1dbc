// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

package thonny

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xilione/thonny/internal/decode"
	"go4.org/mem"
)

// A Source holds one unit of decoded program text, split into lines,
// together with the encoding its tokenizer declared for it. Lines are
// exposed as read-only views so that marking passes and queries can
// share them without copying.
type Source struct {
	lines []mem.RO // line contents, terminators included
	codec *decode.Codec
}

// NewSource constructs a Source from decoded program text and the name
// of its declared encoding. The text is split after each newline; text
// ending in a newline therefore yields a final empty line.
func NewSource(text, encoding string) (*Source, error) {
	codec, err := decode.Lookup(encoding)
	if err != nil {
		return nil, fmt.Errorf("source encoding: %w", err)
	}
	parts := strings.SplitAfter(text, "\n")
	lines := make([]mem.RO, len(parts))
	for i, p := range parts {
		lines[i] = mem.S(p)
	}
	return &Source{lines: lines, codec: codec}, nil
}

// Encoding reports the declared encoding name.
func (s *Source) Encoding() string { return s.codec.Name() }

// NumLines reports the number of lines of text.
func (s *Source) NumLines() int { return len(s.lines) }

// Line returns the contents of the numbered line, including its
// terminator. Lines are numbered from 1; out-of-range numbers panic.
func (s *Source) Line(n int) mem.RO { return s.lines[n-1] }

// End returns the position immediately past the last character of the
// text.
func (s *Source) End() Pos {
	last := len(s.lines)
	return Pos{Line: last, Col: utf8.RuneCountInString(s.lines[last-1].StringCopy())}
}

// CharColumn converts a byte offset within the numbered line, measured
// in the declared encoding, to a character offset. Offsets past the end
// of the encoded line count the whole line. Unlike Line, an out-of-range
// line number is reported as an error, since line numbers here usually
// come from parser output.
func (s *Source) CharColumn(line, byteCol int) (int, error) {
	if line < 1 || line > len(s.lines) {
		return 0, fmt.Errorf("line %d out of range", line)
	}
	n, err := s.codec.PrefixLen(s.Line(line).StringCopy(), byteCol)
	if err != nil {
		return 0, &DecodeError{Line: line, Encoding: s.codec.Name(), Err: err}
	}
	return n, nil
}

// CharColumnUTF8 converts a UTF-8 byte offset within the numbered line
// to a character offset, regardless of the declared encoding. Parsers
// report UTF-8 offsets even when the source bytes were in another
// encoding.
func (s *Source) CharColumnUTF8(line, byteCol int) (int, error) {
	if line < 1 || line > len(s.lines) {
		return 0, fmt.Errorf("line %d out of range", line)
	}
	n, err := decode.UTF8PrefixLen(s.Line(line).StringCopy(), byteCol)
	if err != nil {
		return 0, &DecodeError{Line: line, Encoding: "utf-8", Err: err}
	}
	return n, nil
}

// Extract returns the text delimited by r.
func (s *Source) Extract(r TextRange) string {
	first := s.Line(r.Start.Line).StringCopy()
	if r.Start.Line == r.End.Line {
		return first[charIndex(first, r.Start.Col):charIndex(first, r.End.Col)]
	}
	var sb strings.Builder
	sb.WriteString(first[charIndex(first, r.Start.Col):])
	for n := r.Start.Line + 1; n < r.End.Line; n++ {
		sb.WriteString(s.Line(n).StringCopy())
	}
	last := s.Line(r.End.Line).StringCopy()
	sb.WriteString(last[:charIndex(last, r.End.Col)])
	return sb.String()
}

// charIndex reports the byte index of the col'th character of s, or
// len(s) if col exceeds the character count.
func charIndex(s string, col int) int {
	for i := range s {
		if col == 0 {
			return i
		}
		col--
	}
	return len(s)
}

// A DecodeError reports that source bytes could not be interpreted in
// the relevant encoding.
type DecodeError struct {
	Line     int    // 1-based line number
	Encoding string // encoding the bytes were interpreted in
	Err      error  // the underlying cause
}

func (d *DecodeError) Error() string {
	return fmt.Sprintf("line %d: decode %s: %v", d.Line, d.Encoding, d.Err)
}

func (d *DecodeError) Unwrap() error { return d.Err }
