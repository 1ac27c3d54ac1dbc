// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

// Package decode resolves declared source encodings and converts byte
// offsets within encoded text into character counts.
package decode

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrMalformed is reported when encoded text cannot be interpreted in
// the expected encoding, typically because an offset splits a multibyte
// character.
var ErrMalformed = errors.New("malformed encoded text")

// A Codec measures character lengths of encoded byte prefixes for one
// declared source encoding.
type Codec struct {
	name string
	enc  encoding.Encoding // nil when byte offsets are native UTF-8
}

// Lookup resolves the named encoding. Names are matched against the
// IANA registry first, then the WHATWG index, retrying with punctuation
// stripped to accommodate spellings like "latin-1". UTF-8 and its
// aliases get a native fast path.
func Lookup(name string) (*Codec, error) {
	if isUTF8(name) {
		return &Codec{name: name}, nil
	}
	enc, err := find(name)
	if err != nil {
		return nil, err
	}
	return &Codec{name: name, enc: enc}, nil
}

// Name reports the encoding name the codec was resolved from.
func (c *Codec) Name() string { return c.name }

// PrefixLen reports the number of characters encoded by the first
// byteCol bytes of line's encoded form. Offsets past the end of the
// encoded line count the whole line.
func (c *Codec) PrefixLen(line string, byteCol int) (int, error) {
	if c.enc == nil {
		return UTF8PrefixLen(line, byteCol)
	}
	if byteCol < 0 {
		return 0, fmt.Errorf("%w: negative offset %d", ErrMalformed, byteCol)
	}
	raw, err := c.enc.NewEncoder().Bytes([]byte(line))
	if err != nil {
		return 0, fmt.Errorf("encode line as %s: %w", c.name, err)
	}
	if byteCol > len(raw) {
		byteCol = len(raw)
	}
	dec, err := c.enc.NewDecoder().Bytes(raw[:byteCol])
	if err != nil {
		return 0, fmt.Errorf("decode prefix as %s: %w", c.name, err)
	}
	// The decoder substitutes U+FFFD for a truncated trailing unit
	// instead of failing. Since raw is a valid encoding of line, and
	// these encodings cannot themselves encode U+FFFD, a replacement
	// character can only mean the offset split a unit.
	if strings.ContainsRune(string(dec), utf8.RuneError) {
		return 0, fmt.Errorf("%w: offset %d is not a character boundary", ErrMalformed, byteCol)
	}
	return utf8.RuneCount(dec), nil
}

// UTF8PrefixLen reports the number of characters in the first byteCol
// bytes of line, which must be valid UTF-8 up to that offset. Offsets
// past the end of the line count the whole line.
func UTF8PrefixLen(line string, byteCol int) (int, error) {
	if byteCol < 0 {
		return 0, fmt.Errorf("%w: negative offset %d", ErrMalformed, byteCol)
	}
	if byteCol > len(line) {
		byteCol = len(line)
	}
	p := line[:byteCol]
	if !utf8.ValidString(p) {
		return 0, fmt.Errorf("%w: offset %d is not a character boundary", ErrMalformed, byteCol)
	}
	return utf8.RuneCountInString(p), nil
}

func isUTF8(name string) bool {
	switch normalize(name) {
	case "utf8", "utf8sig", "ascii", "usascii":
		return true
	}
	return false
}

// normalize lowercases name and strips the punctuation that varies
// between encoding alias spellings.
func normalize(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case '-', '_', ' ', '.':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func find(name string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(normalize(name)); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}
