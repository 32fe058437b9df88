// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// A mentionSyntax describes user names on one service.
type mentionSyntax struct {
	extra  string // punctuation allowed besides letters, digits and _
	ascii  bool   // letters and digits are ASCII only
	maxLen int    // maximum runes in a name
	url    string // link prefix; the name is appended
}

var mentionSyntaxes = [...]mentionSyntax{
	Twitter:    {"", true, 20, "https://twitter.com/"},
	Instagram:  {".", false, 50, "https://instagram.com/"},
	SoundCloud: {".-", false, 50, "https://soundcloud.com/"},
	TikTok:     {".", true, 23, "https://www.tiktok.com/@"},
}

// mentionSyntaxFor returns the mention syntax for svc.
// It reports false if svc has no user pages.
func mentionSyntaxFor(svc Service) (mentionSyntax, bool) {
	if svc == 0 {
		svc = Twitter
	}
	if int(svc) >= len(mentionSyntaxes) || mentionSyntaxes[svc].url == "" {
		return mentionSyntax{}, false
	}
	return mentionSyntaxes[svc], true
}

func (ms *mentionSyntax) isNameRune(r rune) bool {
	if ms.ascii && r >= utf8.RuneSelf {
		return false
	}
	return isWordRune(r) || r < utf8.RuneSelf && strings.IndexByte(ms.extra, byte(r)) >= 0
}

// scan returns the mention candidates in s, left to right.
//
// A mention is @ followed by a name, at the start of s or after
// a rune that is not alphanumeric; "me@example.com" has no mention.
// Trailing dots are not part of the name. Names that are too long,
// or that run into another @, are not mentions.
func (ms *mentionSyntax) scan(s string) iter.Seq[span] {
	return func(yield func(span) bool) {
		for i := 0; i < len(s); {
			k := strings.IndexByte(s[i:], '@')
			if k < 0 {
				return
			}
			i += k
			if isAlnum(runeBefore(s, i)) {
				i++
				continue
			}
			j := i + 1
			for {
				r, w := runeAt(s, j)
				if w == 0 || !ms.isNameRune(r) {
					break
				}
				j += w
			}
			raw := j
			for j > i+1 && s[j-1] == '.' {
				j--
			}
			n := utf8.RuneCountInString(s[i+1 : j])
			if n == 0 || n > ms.maxLen || raw < len(s) && s[raw] == '@' {
				i = raw
				continue
			}
			if !yield(span{i, j}) {
				return
			}
			i = raw
		}
	}
}

// A mentionMatcher is the [matcher] for [Mention] matches.
type mentionMatcher struct {
	service Service
}

func (mentionMatcher) kind() Kind { return Mention }

func (mm mentionMatcher) appendMatches(dst []Match, s string) []Match {
	ms, ok := mentionSyntaxFor(mm.service)
	if !ok {
		return dst
	}
	for sp := range ms.scan(s) {
		text := s[sp.start:sp.end]
		dst = append(dst, Match{
			Kind:    Mention,
			Text:    text,
			Offset:  sp.start,
			URL:     ms.url + text[1:],
			Service: mm.service,
			Name:    text[1:],
		})
	}
	return dst
}
