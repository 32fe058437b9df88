// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/tools/txtar"
)

func FuzzFind(f *testing.F) {
	for _, tt := range findTests {
		f.Add(tt.in)
	}
	for _, tt := range urlTests {
		f.Add(tt.in)
	}
	for _, tt := range linkTests {
		f.Add(tt.in)
	}
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for i := 0; i+2 <= len(a.Files); i += 2 {
			f.Add(decode(string(a.Files[i].Data)))
		}
	}

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		checkMatches(t, "Find", s, Find(s))

		var l Linker
		ms := l.FindHTML(s)
		checkMatches(t, "FindHTML", s, ms)

		// Linking with the matched text itself must give back the input.
		if out := Replace(s, ms, func(m Match) string { return m.Text }); out != s {
			t.Fatalf("Replace(%q) with identity = %q", s, out)
		}
		if len(ms) == 0 {
			if out := l.Link(s); out != s {
				t.Fatalf("Link(%q) = %q, want input unchanged", s, out)
			}
		}
	})
}

// checkMatches checks that ms are verbatim slices of s,
// sorted by offset, and not overlapping.
func checkMatches(t *testing.T, name, s string, ms []Match) {
	t.Helper()
	end := 0
	for _, m := range ms {
		if m.Offset < end {
			t.Fatalf("%s(%q): %v overlaps or precedes previous match ending at %d", name, s, m, end)
		}
		if m.End() > len(s) || s[m.Offset:m.End()] != m.Text {
			t.Fatalf("%s(%q): %v is not a slice of the input", name, s, m)
		}
		if m.Text == "" || m.URL == "" {
			t.Fatalf("%s(%q): %v has empty text or URL", name, s, m)
		}
		if strings.TrimSpace(m.Text) != m.Text {
			t.Fatalf("%s(%q): %v has surrounding space", name, s, m)
		}
		end = m.End()
	}
}
