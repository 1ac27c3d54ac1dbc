// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

// Package pytoken defines the lexical token model for Python source and
// the adapter that converts tokenizer byte columns into character
// columns.
package pytoken

import (
	"fmt"

	"github.com/xilione/thonny"
)

// Type is the type of a lexical token in the Python grammar.
type Type byte

// Constants defining the valid Type values.
const (
	ErrorToken Type = iota // tokenization error
	Name                   // identifier or reserved word
	Number                 // numeric literal
	Str                    // string literal, prefix and quotes included
	Op                     // operator or delimiter
	Comment                // comment through end of line
	Newline                // logical line terminator
	NL                     // non-logical line break
	Indent                 // increase of indentation
	Dedent                 // decrease of indentation
	Encoding               // declared encoding, reported before line 1
	EndMarker              // end of input
)

var typeStr = [...]string{
	ErrorToken: "error",
	Name:       "name",
	Number:     "number",
	Str:        "string",
	Op:         "op",
	Comment:    "comment",
	Newline:    "newline",
	NL:         "nl",
	Indent:     "indent",
	Dedent:     "dedent",
	Encoding:   "encoding",
	EndMarker:  "endmarker",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return typeStr[ErrorToken]
	}
	return typeStr[v]
}

// A Token is one lexical token of a source unit. Tokens are plain
// values; the passes that consume them never modify them.
type Token struct {
	Type  Type
	Text  string     // the token text as written in source
	Start thonny.Pos // first character of the token
	End   thonny.Pos // position just past the token
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q %v-%v", t.Type, t.Text, t.Start, t.End)
}
