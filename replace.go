// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"fmt"
	"strings"
)

// Replace returns a copy of s with the text of each match replaced
// by anchor(m). The bytes outside the matches are copied unchanged.
//
// The matches must be sorted by offset, must not overlap, and must lie
// within s, as the results of [Find] and [Linker.FindHTML] do.
// Replace panics otherwise.
func Replace(s string, matches []Match, anchor func(Match) string) string {
	if len(matches) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 32*len(matches))
	last := 0
	for _, m := range matches {
		if m.Offset < last || m.End() > len(s) {
			panic(fmt.Sprintf("autolink: Replace: match %v out of order or out of range", m))
		}
		b.WriteString(s[last:m.Offset])
		b.WriteString(anchor(m))
		last = m.End()
	}
	b.WriteString(s[last:])
	return b.String()
}

// Link returns a copy of the HTML document src with every match
// outside tags and existing links replaced by a link.
// A document with nothing to link is returned unchanged.
//
// Link panics if l is not a valid configuration (see [Linker.Validate]).
func (l *Linker) Link(src string) string {
	if err := l.Validate(); err != nil {
		panic(err)
	}
	return Replace(src, l.findHTML(nil, src), l.replacement)
}

// replacement returns the HTML that replaces m.
func (l *Linker) replacement(m Match) string {
	a := l.Anchor(m)
	if l.ReplaceFunc != nil {
		return l.ReplaceFunc(m, a)
	}
	return a
}

// Link returns a copy of src with every match linked, using the zero [Linker].
func Link(src string) string {
	var l Linker
	return Replace(src, l.findHTML(nil, src), l.replacement)
}
