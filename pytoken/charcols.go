// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

package pytoken

import "github.com/xilione/thonny"

// CharColumns returns a copy of toks in which every column offset is a
// character offset rather than a byte offset in the declared source
// encoding. Tokens reported before the first line and zero-width
// markers at column zero carry no byte offsets and are copied
// unchanged. The first conversion failure aborts the pass and is
// returned; toks is never modified.
func CharColumns(toks []Token, src *thonny.Source) ([]Token, error) {
	out := make([]Token, len(toks))
	for i, tok := range toks {
		if tok.Start.Line == 0 || tok.Start.Col == 0 && tok.End.Col == 0 {
			out[i] = tok
			continue
		}
		start, err := src.CharColumn(tok.Start.Line, tok.Start.Col)
		if err != nil {
			return nil, err
		}
		end, err := src.CharColumn(tok.End.Line, tok.End.Col)
		if err != nil {
			return nil, err
		}
		tok.Start.Col = start
		tok.End.Col = end
		out[i] = tok
	}
	return out, nil
}
