// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

// Package thonny provides the position model and source text access
// shared by the packages that reconstruct character-exact text ranges
// for Python syntax trees.
//
// # Positions and ranges
//
// A Pos names a point in source text by 1-based line number and 0-based
// character column. A TextRange is the half-open region between two
// positions. Containment between ranges is non-strict: every range
// contains itself, and an empty range sitting on a boundary is
// contained by both of its neighbors. Queries that need to tell such
// neighbors apart match ranges exactly instead.
//
// # Source text
//
// A Source wraps one unit of decoded program text together with its
// declared encoding. It serves the two column conversions the pipeline
// needs: CharColumn interprets byte offsets in the declared encoding,
// as tokenizers report them, and CharColumnUTF8 interprets UTF-8 byte
// offsets, as parsers report them regardless of the source encoding.
// Extract returns the text a marked range delimits.
//
// # Marking pipeline
//
// The subpackages divide the reconstruction work:
//
//	pytoken  | token model and byte-to-character column adapter
//	pyast    | syntax tree model, traversal, literal construction
//	marker   | start-position repair and end-position reconstruction
//	query    | range queries over a marked tree
//
// A typical pipeline builds a Source, adapts the token columns, and
// marks the tree in place:
//
//	src, err := thonny.NewSource(text, enc)
//	...
//	toks, err := pytoken.CharColumns(raw, src)
//	...
//	report, err := marker.Mark(tree, toks, src)
//
// After marking, every positioned node carries a complete TextRange and
// the query package can resolve selections against the tree.
package thonny
