// Copyright (C) 2026 The Xilione Authors. All Rights Reserved.

package decode

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	ok := []string{
		"utf-8", "UTF-8", "utf8", "utf-8-sig", "ascii", "us-ascii",
		"latin-1", "Latin-1", "iso-8859-1", "iso-8859-15", "cp1252", "gbk",
	}
	for _, name := range ok {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q): unexpected error: %v", name, err)
		}
	}
	if _, err := Lookup("no-such-codec"); err == nil {
		t.Error("Lookup of unknown name: got nil, want error")
	}
}

func TestUTF8PrefixLen(t *testing.T) {
	tests := []struct {
		line    string
		byteCol int
		want    int
		bad     bool
	}{
		{"x = 1", 0, 0, false},
		{"x = 1", 4, 4, false},
		{"x = 1", 99, 5, false}, // clamped to the whole line
		{"ä = 1", 2, 1, false},
		{"ä = 1", 6, 5, false},
		{"ä = 1", 1, 0, true}, // inside the two-byte character
		{"ä = 1", -1, 0, true},
	}
	for _, test := range tests {
		got, err := UTF8PrefixLen(test.line, test.byteCol)
		if test.bad {
			if err == nil {
				t.Errorf("UTF8PrefixLen(%q, %d): got %d, want error", test.line, test.byteCol, got)
			} else if !errors.Is(err, ErrMalformed) {
				t.Errorf("UTF8PrefixLen(%q, %d): error %v does not wrap ErrMalformed", test.line, test.byteCol, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("UTF8PrefixLen(%q, %d): unexpected error: %v", test.line, test.byteCol, err)
		} else if got != test.want {
			t.Errorf("UTF8PrefixLen(%q, %d): got %d, want %d", test.line, test.byteCol, got, test.want)
		}
	}
}

func TestPrefixLen(t *testing.T) {
	tests := []struct {
		enc     string
		line    string
		byteCol int
		want    int
		bad     bool
	}{
		{"latin-1", "ä = õ", 1, 1, false}, // one byte per character
		{"latin-1", "ä = õ", 5, 5, false},
		{"latin-1", "ä = õ", 99, 5, false},
		{"gbk", "中文 = 1", 2, 1, false}, // two bytes per ideograph
		{"gbk", "中文 = 1", 4, 2, false},
		{"gbk", "中文 = 1", 8, 6, false},
		{"gbk", "中文 = 1", 1, 0, true}, // inside a two-byte unit
	}
	for _, test := range tests {
		c, err := Lookup(test.enc)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", test.enc, err)
		}
		got, err := c.PrefixLen(test.line, test.byteCol)
		if test.bad {
			if err == nil {
				t.Errorf("PrefixLen(%q, %d) in %s: got %d, want error", test.line, test.byteCol, test.enc, got)
			} else if !errors.Is(err, ErrMalformed) {
				t.Errorf("PrefixLen(%q, %d) in %s: error %v does not wrap ErrMalformed", test.line, test.byteCol, test.enc, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("PrefixLen(%q, %d) in %s: unexpected error: %v", test.line, test.byteCol, test.enc, err)
		} else if got != test.want {
			t.Errorf("PrefixLen(%q, %d) in %s: got %d, want %d", test.line, test.byteCol, test.enc, got, test.want)
		}
	}
}
