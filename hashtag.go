// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"iter"
	"strings"
)

// maxHashtagLen is the maximum number of runes in a hashtag, not counting the #.
const maxHashtagLen = 139

// scanHashtag returns the hashtag candidates in s, left to right.
// A hashtag is # followed by 1 to maxHashtagLen word runes,
// at the start of s or after a rune that is not alphanumeric.
// A longer run of word runes is not a hashtag at all,
// and neither is the "#39" of a character reference like "&#39;".
func scanHashtag(s string) iter.Seq[span] {
	return func(yield func(span) bool) {
		for i := 0; i < len(s); {
			k := strings.IndexByte(s[i:], '#')
			if k < 0 {
				return
			}
			i += k
			if prev := runeBefore(s, i); prev == '&' || isAlnum(prev) {
				i++
				continue
			}
			j := i + 1
			n := 0
			for {
				r, w := runeAt(s, j)
				if w == 0 || !isWordRune(r) {
					break
				}
				j += w
				n++
			}
			if n == 0 || n > maxHashtagLen {
				i = j
				continue
			}
			if !yield(span{i, j}) {
				return
			}
			i = j
		}
	}
}

// hashtagURL returns the link for tag on svc.
// It reports false if svc has no hashtag pages.
func hashtagURL(svc Service, tag string) (string, bool) {
	switch svc {
	case 0, Twitter:
		return "https://twitter.com/hashtag/" + tag, true
	case Facebook:
		return "https://www.facebook.com/hashtag/" + tag, true
	case Instagram:
		return "https://instagram.com/explore/tags/" + tag, true
	case TikTok:
		return "https://www.tiktok.com/tag/" + tag, true
	}
	return "", false
}

// A hashtagMatcher is the [matcher] for [Hashtag] matches.
type hashtagMatcher struct {
	service Service
}

func (hashtagMatcher) kind() Kind { return Hashtag }

func (hm hashtagMatcher) appendMatches(dst []Match, s string) []Match {
	for sp := range scanHashtag(s) {
		text := s[sp.start:sp.end]
		url, _ := hashtagURL(hm.service, text[1:])
		dst = append(dst, Match{
			Kind:    Hashtag,
			Text:    text,
			Offset:  sp.start,
			URL:     url,
			Service: hm.service,
			Name:    text[1:],
		})
	}
	return dst
}
