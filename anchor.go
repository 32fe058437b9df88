// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go4.org/bytereplacer"
)

// A Linker rewrites HTML so that the text a [Finder] matches becomes links.
//
// The zero Linker links every kind of match, strips "http://",
// "https://" and "www." from the displayed text of URLs, and
// emits plain <a href="..."> tags.
type Linker struct {
	Finder

	// KeepPrefix keeps the scheme and "www." prefix in the displayed
	// text of URL links. The href always keeps them.
	KeepPrefix bool

	// KeepTrailingSlash keeps a trailing slash in the displayed text of URL links.
	KeepTrailingSlash bool

	// NewWindow adds target="_blank" and rel="noopener noreferrer" to links.
	NewWindow bool

	// Class, if not empty, sets the class attribute of each link to
	// Class plus Class-kind, and Class-service for hashtags and mentions:
	// class="link link-url" or class="link link-mention link-twitter".
	Class string

	// Truncate, if positive, limits the displayed text of links to
	// Truncate runes, replacing the cut text with "..".
	Truncate int

	// TruncateMiddle cuts truncated text in the middle instead of at the end.
	TruncateMiddle bool

	// ReplaceFunc, if not nil, is called for each match with the anchor
	// the Linker would emit, and returns the HTML to emit instead.
	ReplaceFunc func(m Match, anchor string) string
}

// Validate reports whether l is a usable configuration.
func (l *Linker) Validate() error {
	if err := l.Finder.Validate(); err != nil {
		return err
	}
	if l.Truncate < 0 {
		return fmt.Errorf("autolink: %w: %d", ErrNegativeTruncate, l.Truncate)
	}
	return nil
}

// htmlAttrEscaper escapes text for use in a double-quoted attribute value.
var htmlAttrEscaper = bytereplacer.New(
	"&", "&amp;",
	`"`, "&quot;",
	`<`, "&lt;",
	`>`, "&gt;",
)

// Anchor returns the <a> tag for m.
//
// The match text is HTML (it was found in HTML), so the displayed
// text is emitted as is. The href has "&amp;" decoded, since the
// source HTML would have shown a URL's "&" that way, and is then
// escaped for the attribute.
func (l *Linker) Anchor(m Match) string {
	href := strings.ReplaceAll(m.URL, "&amp;", "&")

	var b strings.Builder
	b.WriteString(`<a href="`)
	b.Write(htmlAttrEscaper.Replace([]byte(href)))
	b.WriteString(`"`)
	if l.Class != "" {
		class := l.Class + " " + l.Class + "-" + m.Kind.String()
		if m.Kind == Hashtag || m.Kind == Mention {
			class += " " + l.Class + "-" + m.Service.String()
		}
		b.WriteString(` class="`)
		b.Write(htmlAttrEscaper.Replace([]byte(class)))
		b.WriteString(`"`)
	}
	if l.NewWindow {
		b.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	b.WriteString(`>`)
	b.WriteString(l.displayText(m))
	b.WriteString(`</a>`)
	return b.String()
}

// displayText returns the text to show for m.
func (l *Linker) displayText(m Match) string {
	text := m.Text
	switch m.Kind {
	case URL:
		if m.ProtocolRelative {
			text = strings.TrimPrefix(text, "//")
		}
		if !l.KeepPrefix {
			text = stripURLPrefix(text)
		}
		if !l.KeepTrailingSlash {
			text = strings.TrimSuffix(text, "/")
		}
	case Email:
		if hasPrefixFold(text, "mailto:") {
			text = text[len("mailto:"):]
		}
	}
	if l.Truncate > 0 {
		text = truncate(text, l.Truncate, l.TruncateMiddle)
	}
	return text
}

// stripURLPrefix removes a leading "http://" or "https://",
// then a leading "www.", ignoring case.
func stripURLPrefix(text string) string {
	switch {
	case hasPrefixFold(text, "http://"):
		text = text[len("http://"):]
	case hasPrefixFold(text, "https://"):
		text = text[len("https://"):]
	}
	if hasPrefixFold(text, "www.") {
		text = text[len("www."):]
	}
	return text
}

// ellipsis replaces the text cut by truncate.
const ellipsis = ".."

// truncate shortens text to n runes, ellipsis included.
// It cuts at the end of text, or in the middle if middle is set.
func truncate(text string, n int, middle bool) string {
	count := utf8.RuneCountInString(text)
	if count <= n {
		return text
	}
	keep := max(n-len(ellipsis), 0)
	if !middle {
		return prefixRunes(text, keep) + ellipsis
	}
	head := (keep + 1) / 2
	tail := keep - head
	return prefixRunes(text, head) + ellipsis + suffixRunes(text, count, tail)
}

// prefixRunes returns the first n runes of s.
func prefixRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// suffixRunes returns the last n runes of s, which has count runes.
func suffixRunes(s string, count, n int) string {
	skip := count - n
	for i := range s {
		if skip == 0 {
			return s[i:]
		}
		skip--
	}
	return ""
}
