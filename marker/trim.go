// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

package marker

import (
	"errors"
	"fmt"

	"github.com/creachadair/mds/mapset"
	"github.com/xilione/thonny/pyast"
	"github.com/xilione/thonny/pytoken"
)

// A window is an index range [lo, hi) over the ender's token array.
// Trimming moves hi; the tokens themselves are shared and never change.
type window struct{ lo, hi int }

var errEmptyWindow = errors.New("token window is empty")

// Texts a statement window may not end with. The parser attributes the
// colon of a compound statement header, and the keyword opening the
// next clause, to the statement before them.
var stmtTrailing = mapset.New(":", "else", "elif", "finally", "except")

// Words that cannot end an expression even though they tokenize as
// names.
var reservedWords = mapset.New(
	"and", "as", "assert", "class", "def", "del", "elif", "else",
	"except", "exec", "finally", "for", "from", "global", "if", "import",
	"in", "is", "lambda", "not", "or", "try", "while", "with", "yield",
)

var (
	openingBrackets = mapset.New("(", "{", "[")
	closingBrackets = mapset.New(")", "}", "]")
)

// trimAndSet trims w down to the tokens that are part of p itself and
// assigns p's end from the last of them. Statement windows only shed
// trailing layout tokens; expression windows also shed the surrounding
// brackets and separators the extraction may have picked up. For calls
// without arguments and for attributes the window is additionally
// peeled past p's own trailing tokens, so that the function or value
// child does not claim them.
func (e *ender) trimAndSet(p pyast.Positioned, w *window) error {
	if _, ok := p.(pyast.Stmt); ok {
		if err := e.trimStmt(w); err != nil {
			return err
		}
	} else {
		e.trimClosers(w, !isTuple(p))
		if err := e.trimJunk(w); err != nil {
			return err
		}
		e.trimUnclosed(w)
	}
	if w.lo == w.hi {
		return errEmptyWindow
	}
	last := e.sig[w.hi-1]
	p.Range().End = last.End

	switch t := p.(type) {
	case *pyast.Call:
		if len(t.Args) == 0 && len(t.Keywords) == 0 {
			if last.Text != ")" {
				return fmt.Errorf("unexpected %q at end of zero-argument call", last.Text)
			}
			w.hi--
			return e.trimJunk(w)
		}
	case *pyast.Attribute:
		if last.Type != pytoken.Name {
			return fmt.Errorf("unexpected %v token at end of attribute", last.Type)
		}
		w.hi--
		return e.trimJunk(w)
	}
	return nil
}

// trimStmt pops trailing tokens that follow a statement on its lines
// without being part of it: comments, newlines, indentation, and the
// punctuation of an enclosing compound statement.
func (e *ender) trimStmt(w *window) error {
	for {
		if w.lo == w.hi {
			return errEmptyWindow
		}
		last := e.sig[w.hi-1]
		if last.Type == pytoken.NL || last.Type == pytoken.Comment ||
			last.Type == pytoken.Newline || last.Type == pytoken.Indent ||
			stmtTrailing.Has(last.Text) {
			w.hi--
			continue
		}
		return nil
	}
}

// trimClosers cuts w at the first closing bracket that has no opener
// within the window, or at the first top-level comma when
// removeNakedComma is set. Both belong to an enclosing node. A tuple
// owns its top-level commas, so its trim runs without removeNakedComma.
func (e *ender) trimClosers(w *window, removeNakedComma bool) {
	level := 0
	for i := w.lo; i < w.hi; i++ {
		text := e.sig[i].Text
		if openingBrackets.Has(text) {
			level++
		} else if closingBrackets.Has(text) {
			level--
		}
		if level == 0 && text == "," && removeNakedComma {
			w.hi = i
			return
		}
		if level < 0 {
			w.hi = i
			return
		}
	}
}

// trimJunk pops trailing tokens until the window ends with something an
// expression can end with: a name, number, string, closing bracket or
// ellipsis, and not a reserved word.
func (e *ender) trimJunk(w *window) error {
	for {
		if w.lo == w.hi {
			return errEmptyWindow
		}
		last := e.sig[w.hi-1]
		stops := last.Type == pytoken.Name || last.Type == pytoken.Number ||
			last.Type == pytoken.Str || closingBrackets.Has(last.Text) ||
			last.Text == "..."
		if !stops || reservedWords.Has(last.Text) {
			w.hi--
			continue
		}
		return nil
	}
}

// trimUnclosed cuts w at the rightmost opening bracket that is never
// closed within the window.
func (e *ender) trimUnclosed(w *window) {
	level := 0
	for i := w.hi - 1; i >= w.lo; i-- {
		text := e.sig[i].Text
		if openingBrackets.Has(text) {
			level--
		} else if closingBrackets.Has(text) {
			level++
		}
		if level < 0 {
			w.hi = i
			level = 0
		}
	}
}

func isTuple(n pyast.Node) bool {
	_, ok := n.(*pyast.Tuple)
	return ok
}
