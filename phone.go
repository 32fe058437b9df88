// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"iter"
	"strings"
)

// A span is a candidate match s[start:end].
type span struct {
	start, end int
}

// scanPhone returns the phone number candidates in s, left to right.
//
// A phone number is an optional country code ("+1 ", "44."),
// a three-digit area code optionally in parentheses, then
// three and four digit groups:
//
//	(555) 555-5555
//	+1 555.555.5555
//	555 5555555 is not a match: the last two groups need a separator.
//
// A number is not preceded or followed by a letter or digit.
func scanPhone(s string) iter.Seq[span] {
	return func(yield func(span) bool) {
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c != '+' && c != '(' && !isDigit(c) {
				continue
			}
			if prev := runeBefore(s, i); prev == '+' || isAlnum(prev) {
				continue
			}
			end, ok := matchPhone(s, i)
			if !ok {
				continue
			}
			if next, _ := runeAt(s, end); isAlnum(next) {
				continue
			}
			if !yield(span{i, end}) {
				return
			}
			i = end - 1
		}
	}
}

// matchPhone matches a phone number at s[i:], returning its end.
// Country codes are tried longest first, then no country code.
func matchPhone(s string, i int) (end int, ok bool) {
	j := i
	if s[j] == '+' {
		j++
	}
	for n := 3; n >= 1; n-- {
		k := j + n
		if k < len(s) && digitsAt(s, j, n) && isPhoneSep(s[k]) {
			if end, ok := matchLocalPhone(s, k+1); ok {
				return end, true
			}
		}
	}
	if s[i] == '+' {
		return 0, false
	}
	return matchLocalPhone(s, i)
}

// matchLocalPhone matches the area code and subscriber number at s[j:].
func matchLocalPhone(s string, j int) (end int, ok bool) {
	paren := j < len(s) && s[j] == '('
	if paren {
		j++
	}
	if !digitsAt(s, j, 3) {
		return 0, false
	}
	j += 3
	if paren {
		if j >= len(s) || s[j] != ')' {
			return 0, false
		}
		j++
	}
	if j < len(s) && isPhoneSep(s[j]) {
		j++
	}
	if !digitsAt(s, j, 3) {
		return 0, false
	}
	j += 3
	if j >= len(s) || !isPhoneSep(s[j]) {
		return 0, false
	}
	j++
	if !digitsAt(s, j, 4) {
		return 0, false
	}
	return j + 4, true
}

// buildPhone returns the phone match for s[sp.start:sp.end].
func buildPhone(s string, sp span) Match {
	text := s[sp.start:sp.end]
	number := strings.Map(func(r rune) rune {
		if r < 0x80 && isDigit(byte(r)) {
			return r
		}
		return -1
	}, text)
	m := Match{
		Kind:     Phone,
		Text:     text,
		Offset:   sp.start,
		Number:   number,
		PlusSign: text[0] == '+',
	}
	if m.PlusSign {
		m.URL = "tel:+" + number
	} else {
		m.URL = "tel:" + number
	}
	return m
}

// A phoneMatcher is the [matcher] for [Phone] matches.
type phoneMatcher struct{}

func (phoneMatcher) kind() Kind { return Phone }

func (phoneMatcher) appendMatches(dst []Match, s string) []Match {
	for sp := range scanPhone(s) {
		dst = append(dst, buildPhone(s, sp))
	}
	return dst
}
