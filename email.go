// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// An emailCandidate is a possible email address found by scanEmail.
type emailCandidate struct {
	start  int // start of the match, including any "mailto:"
	end    int
	mailto bool
}

// scanEmail returns the email address candidates in s, left to right.
// Each candidate is anchored at an @ sign; the local part is read
// backward from it, but never into a previous candidate.
func scanEmail(s string) iter.Seq[emailCandidate] {
	return func(yield func(emailCandidate) bool) {
		floor := 0
		for i := 0; i < len(s); {
			at := strings.IndexByte(s[i:], '@')
			if at < 0 {
				return
			}
			at += i
			c, ok := parseEmail(s, floor, at)
			if !ok {
				i = at + 1
				continue
			}
			if !yield(c) {
				return
			}
			floor = c.end
			i = c.end
		}
	}
}

// parseEmail parses an email address around the @ sign at s[at],
// reading no further back than s[floor].
//
// The local part is one or more local-part runes separated by single
// dots; it does not begin or end with a dot. The domain needs at least
// one dot and a top-level label (see hasTLD).
func parseEmail(s string, floor, at int) (c emailCandidate, ok bool) {
	j := at
	for j > floor {
		r, n := utf8.DecodeLastRuneInString(s[floor:j])
		if r != '.' && !isLocalPartRune(r) {
			break
		}
		j -= n
	}
	if k := strings.LastIndex(s[j:at], ".."); k >= 0 {
		j += k + 2
	}
	for j < at && s[j] == '.' {
		j++
	}
	if j == at || s[at-1] == '.' {
		return c, false
	}

	end := scanHost(s, at+1)
	host := s[at+1 : end]
	if !hasTLD(host) || strings.Contains(host, "..") {
		return c, false
	}

	c = emailCandidate{start: j, end: end}
	if j-len("mailto:") >= floor && hasPrefixFold(s[j-len("mailto:"):], "mailto:") {
		c.start -= len("mailto:")
		c.mailto = true
	}
	return c, true
}

// build returns the email match for c.
func (c *emailCandidate) build(s string) Match {
	text := s[c.start:c.end]
	m := Match{
		Kind:   Email,
		Text:   text,
		Offset: c.start,
		URL:    text,
	}
	if !c.mailto {
		m.URL = "mailto:" + text
	}
	return m
}

// An emailMatcher is the [matcher] for [Email] matches.
type emailMatcher struct{}

func (emailMatcher) kind() Kind { return Email }

func (emailMatcher) appendMatches(dst []Match, s string) []Match {
	for c := range scanEmail(s) {
		dst = append(dst, c.build(s))
	}
	return dst
}
