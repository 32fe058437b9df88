// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// opaqueSchemes lists the schemes recognized without a following "//".
// Any syntactically valid scheme is accepted when "//" follows it.
// "mailto:" is left to the email scanner.
var opaqueSchemes = map[string]bool{
	"bitcoin": true,
	"file":    true,
	"magnet":  true,
	"sms":     true,
	"tel":     true,
	"xmpp":    true,
}

// unsafeSchemes lists schemes that are never linked.
var unsafeSchemes = map[string]bool{
	"data":       true,
	"javascript": true,
	"vbscript":   true,
}

// A urlCandidate is a possible URL found by scanURL,
// not yet checked by validate.
type urlCandidate struct {
	start, end int    // raw span s[start:end]
	scheme     string // scheme without the colon, or ""
	authority  bool   // scheme is followed by "//"
	relative   bool   // protocol-relative: begins with "//"
	www        bool   // host begins with "www."
	hostStart  int
	hostEnd    int
}

// scanURL returns the URL candidates in s, left to right.
//
// A candidate starts at "//" or where the preceding rune cannot
// continue a scheme or host name, so every run of host characters
// is examined once. Scanning resumes after the candidate whether
// or not validate later accepts it.
func scanURL(s string) iter.Seq[urlCandidate] {
	return func(yield func(urlCandidate) bool) {
		for i := 0; i < len(s); {
			if urlCanStart(s, i) {
				if c, ok := parseURLCandidate(s, i); ok {
					if !yield(c) {
						return
					}
					i = c.end
					continue
				}
			}
			_, n := utf8.DecodeRuneInString(s[i:])
			i += n
		}
	}
}

// urlCanStart reports whether a URL candidate may begin at s[i].
func urlCanStart(s string, i int) bool {
	if s[i] == '/' {
		return true
	}
	r := runeBefore(s, i)
	return r != '+' && !isDomainRune(r)
}

// parseURLCandidate parses a URL candidate beginning at s[i].
// It tries a scheme-qualified URL, then a protocol-relative URL,
// then a bare domain.
func parseURLCandidate(s string, i int) (c urlCandidate, ok bool) {
	c.start = i
	j := i
	if strings.HasPrefix(s[i:], "//") {
		c.relative = true
		j += 2
	} else if isLetter(s[i]) {
		if k, ok := parseScheme(s, i); ok {
			c.scheme = s[i : k-1]
			j = k
			if strings.HasPrefix(s[j:], "//") {
				c.authority = true
				j += 2
			}
		}
	}

	c.hostStart = j
	c.hostEnd = scanHost(s, j)
	if c.hostEnd == c.hostStart {
		return c, false
	}
	host := s[c.hostStart:c.hostEnd]
	c.www = len(host) > len("www.") && hasPrefixFold(host, "www.")
	if c.scheme == "" && !c.www && !hasTLD(host) {
		return c, false
	}

	j = c.hostEnd
	if j+1 < len(s) && s[j] == ':' && isDigit(s[j+1]) {
		// port
		j += 2
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	}
	for j < len(s) {
		r, n := utf8.DecodeRuneInString(s[j:])
		if !isURLSuffixRune(r) {
			break
		}
		j += n
	}
	c.end = j

	// Only a few characters can follow a top-level domain:
	// "example.com'" and "a.com,b.com" end at the first ".com".
	if c.end > c.hostEnd && hasTLD(host) {
		switch next := s[c.hostEnd]; {
		case next == '.', next == '/', next == '?', next == '#', next == ':', isLetter(next):
		default:
			c.end = c.hostEnd
		}
	}
	return c, true
}

// parseScheme parses a recognized scheme and its colon at s[i:],
// returning the index just past the colon.
//
// "host.com:8080" is a host and port, not a scheme, and neither is
// "link:" in "link:http://example.com". A scheme not followed by "//"
// must be one of the opaqueSchemes, which keeps "git:1.0" and
// "Note:example.com" from being read as scheme-qualified URLs.
func parseScheme(s string, i int) (end int, ok bool) {
	k := i + 1
	for k < len(s) && isSchemeByte(s[k]) {
		k++
	}
	if k >= len(s) || s[k] != ':' {
		return 0, false
	}
	scheme := s[i:k]
	k++
	if k < len(s) && isDigit(s[k]) {
		return 0, false
	}
	if startsWithAuthorityScheme(s[k:]) {
		return 0, false
	}
	if !strings.HasPrefix(s[k:], "//") && !opaqueSchemes[foldScheme(scheme)] {
		return 0, false
	}
	return k, true
}

// startsWithAuthorityScheme reports whether s begins with "scheme://".
func startsWithAuthorityScheme(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	k := 1
	for k < len(s) && isSchemeByte(s[k]) {
		k++
	}
	return strings.HasPrefix(s[k:], "://")
}

// foldScheme returns the case-folded form of a scheme
// for lookups in the scheme tables.
func foldScheme(scheme string) string {
	return cases.Fold().String(scheme)
}

// scanHost returns the end of the host name starting at s[i].
// A host does not begin or end with a dot.
func scanHost(s string, i int) int {
	if i >= len(s) || s[i] == '.' {
		return i
	}
	j := i
	for j < len(s) {
		r, n := utf8.DecodeRuneInString(s[j:])
		if !isDomainRune(r) {
			break
		}
		j += n
	}
	for j > i && s[j-1] == '.' {
		j--
	}
	return j
}

// hasTLD reports whether host has at least one dot and
// a last label shaped like a top-level domain:
// two or more letters, or a punycode "xn--" label.
func hasTLD(host string) bool {
	dot := strings.LastIndexByte(host, '.')
	if dot <= 0 {
		return false
	}
	tld := host[dot+1:]
	if hasPrefixFold(tld, "xn--") {
		return len(tld) > len("xn--")
	}
	n := 0
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n >= 2
}

// isNumericHost reports whether host consists only of digits and dots.
func isNumericHost(host string) bool {
	for _, c := range []byte(host) {
		if !isDigit(c) && c != '.' {
			return false
		}
	}
	return true
}

// isIPv4 reports whether host is four dot-separated groups of 1 to 3 digits.
// Group values are not range checked.
func isIPv4(host string) bool {
	groups := strings.Split(host, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		if len(g) < 1 || len(g) > 3 || !digitsAt(g, 0, len(g)) {
			return false
		}
	}
	return true
}

// hasLetter reports whether s contains a letter.
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// validate applies the URL acceptance rules to c,
// returning the end of the trimmed match and whether c is a URL at all.
func (c *urlCandidate) validate(s string) (end int, ok bool) {
	if c.scheme != "" && unsafeSchemes[foldScheme(c.scheme)] {
		return 0, false
	}
	host := s[c.hostStart:c.hostEnd]
	if !c.authority && !strings.Contains(s[c.start:c.end], ".") {
		return 0, false
	}
	if isNumericHost(host) && !isIPv4(host) {
		return 0, false
	}
	if c.scheme != "" && !hasLetter(s[c.hostStart:c.end]) && !isIPv4(host) {
		return 0, false
	}
	if strings.Contains(host, "..") {
		return 0, false
	}

	// "@example.com" is a user name or the tail of an email address,
	// and "first.last@" is the head of one.
	prev := runeBefore(s, c.start)
	if prev == '@' {
		return 0, false
	}
	if c.scheme == "" && c.hostEnd < len(s) && s[c.hostEnd] == '@' {
		return 0, false
	}
	// "//" in the middle of a word, as in "asdf//example.com".
	if c.relative && isWordRune(prev) {
		return 0, false
	}

	end = c.end
	nopen := strings.Count(s[c.start:end], "(")
	nclose := strings.Count(s[c.start:end], ")")
Trim:
	for end > c.hostEnd {
		switch s[end-1] {
		case '.', ',', '!', '?', ';', ':':
			// Trim trailing punctuation.
			end--
			continue Trim

		case ')':
			// Trim trailing unmatched (by count only) parens.
			if nclose > nopen {
				nclose--
				end--
				continue Trim
			}
		}
		break Trim
	}
	return end, true
}

// build returns the URL match for the accepted span s[c.start:end].
func (c *urlCandidate) build(s string, end int) Match {
	text := s[c.start:end]
	m := Match{
		Kind:             URL,
		Text:             text,
		Offset:           c.start,
		URL:              text,
		ProtocolRelative: c.relative,
	}
	switch {
	case c.scheme != "":
		m.URLType = SchemeURL
	case c.www:
		m.URLType = WWWURL
	default:
		m.URLType = TLDURL
	}
	if c.scheme == "" && !c.relative {
		m.URL = "http://" + text
	}
	return m
}

// A urlMatcher is the [matcher] for [URL] matches.
type urlMatcher struct {
	types URLTypeSet
}

func (urlMatcher) kind() Kind { return URL }

func (um urlMatcher) appendMatches(dst []Match, s string) []Match {
	for c := range scanURL(s) {
		end, ok := c.validate(s)
		if !ok {
			continue
		}
		m := c.build(s, end)
		if !um.types.Has(m.URLType) {
			continue
		}
		dst = append(dst, m)
	}
	return dst
}
