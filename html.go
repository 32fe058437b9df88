// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipTags lists the elements whose text is never linked.
var skipTags = map[atom.Atom]bool{
	atom.A:        true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Textarea: true,
}

// breakEntities are the character references that end a match.
// Text is scanned in the pieces between them, so that a link
// never absorbs a space or quote written as a reference.
var breakEntities = []string{
	"&nbsp;", "&#160;",
	"&lt;", "&#60;",
	"&gt;", "&#62;",
	"&quot;", "&#34;",
	"&#39;",
}

// FindHTML returns the matches in the text of the HTML document src,
// with offsets into src. Tags, comments and the contents of
// <a>, <script>, <style> and <textarea> elements are never matched.
//
// FindHTML panics if l is not a valid configuration (see [Linker.Validate]).
func (l *Linker) FindHTML(src string) []Match {
	if err := l.Validate(); err != nil {
		panic(err)
	}
	return l.findHTML(nil, src)
}

// findHTML appends the matches in src to dst.
func (l *Linker) findHTML(dst []Match, src string) []Match {
	z := html.NewTokenizer(strings.NewReader(src))
	depth := make(map[atom.Atom]int)
	skipping := 0
	pos := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF, or a truncated tag at the end of src.
			break
		}
		start := pos
		pos += len(z.Raw())
		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			if a := atom.Lookup(name); skipTags[a] {
				depth[a]++
				skipping++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if a := atom.Lookup(name); skipTags[a] && depth[a] > 0 {
				depth[a]--
				skipping--
			}
		case html.TextToken:
			if skipping == 0 {
				dst = l.findText(dst, src, start, pos)
			}
		}
	}
	return dst
}

// findText appends the matches in src[start:end], a run of HTML text,
// splitting it at breakEntities.
func (l *Linker) findText(dst []Match, src string, start, end int) []Match {
	seg := start
	for i := start; i < end; {
		k := strings.IndexByte(src[i:end], '&')
		if k < 0 {
			break
		}
		i += k
		n := entityLen(src[i:end])
		if n == 0 {
			i++
			continue
		}
		dst = l.findSegment(dst, src, seg, i)
		i += n
		seg = i
	}
	return l.findSegment(dst, src, seg, end)
}

// findSegment appends the matches in src[start:end] with offsets into src.
func (l *Linker) findSegment(dst []Match, src string, start, end int) []Match {
	if start == end {
		return dst
	}
	n := len(dst)
	dst = l.Finder.find(dst, src[start:end])
	for i := n; i < len(dst); i++ {
		dst[i].Offset += start
	}
	return dst
}

// entityLen returns the length of the break entity at the start of s, or 0.
func entityLen(s string) int {
	for _, e := range breakEntities {
		if hasPrefixFold(s, e) {
			return len(e)
		}
	}
	return 0
}
