// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind        = errors.New("unknown kind")
	ErrUnknownURLType     = errors.New("unknown URL type")
	ErrUnknownService     = errors.New("unknown service")
	ErrUnsupportedService = errors.New("service does not support this kind")
	ErrNegativeTruncate   = errors.New("negative truncate length")
)

// A matcher finds the matches of one kind in a string.
// The matches it appends are in offset order and do not overlap.
type matcher interface {
	kind() Kind
	appendMatches(dst []Match, s string) []Match
}

// A Finder finds linkable text.
//
// The zero Finder finds every kind of match, with hashtags and
// mentions linked to Twitter. A Finder is not modified by Find,
// so one Finder may be used by multiple goroutines at once.
type Finder struct {
	// Kinds is the set of kinds to find. The zero set means every kind.
	Kinds KindSet

	// URLTypes restricts URL matches to the listed types.
	// The zero set means every type.
	URLTypes URLTypeSet

	// Hashtag is the service hashtag links point at (default Twitter).
	Hashtag Service

	// Mention is the service mention links point at (default Twitter).
	Mention Service
}

// Validate reports whether f is a usable configuration.
func (f *Finder) Validate() error {
	if f.Kinds&^AllKinds != 0 {
		return fmt.Errorf("autolink: %w: kind set %#x", ErrUnknownKind, uint8(f.Kinds))
	}
	if f.URLTypes&^URLTypes(SchemeURL, WWWURL, TLDURL) != 0 {
		return fmt.Errorf("autolink: %w: URL type set %#x", ErrUnknownURLType, uint8(f.URLTypes))
	}
	if f.Hashtag >= numServices {
		return fmt.Errorf("autolink: hashtag: %w: %v", ErrUnknownService, f.Hashtag)
	}
	if f.Mention >= numServices {
		return fmt.Errorf("autolink: mention: %w: %v", ErrUnknownService, f.Mention)
	}
	if _, ok := hashtagURL(f.Hashtag, ""); !ok && f.Kinds.Has(Hashtag) {
		return fmt.Errorf("autolink: hashtag: %w: %v", ErrUnsupportedService, f.Hashtag)
	}
	if _, ok := mentionSyntaxFor(f.Mention); !ok && f.Kinds.Has(Mention) {
		return fmt.Errorf("autolink: mention: %w: %v", ErrUnsupportedService, f.Mention)
	}
	return nil
}

// matchers returns the matchers for the enabled kinds, in Kind order.
func (f *Finder) matchers() []matcher {
	hashtag, mention := f.Hashtag, f.Mention
	if hashtag == 0 {
		hashtag = Twitter
	}
	if mention == 0 {
		mention = Twitter
	}
	all := [...]matcher{
		URL:     urlMatcher{types: f.URLTypes},
		Email:   emailMatcher{},
		Phone:   phoneMatcher{},
		Hashtag: hashtagMatcher{service: hashtag},
		Mention: mentionMatcher{service: mention},
	}
	var list []matcher
	for _, m := range all {
		if f.Kinds.Has(m.kind()) {
			list = append(list, m)
		}
	}
	return list
}

// Find returns the matches in text, sorted by offset, with no two
// matches overlapping. Overlaps between kinds are resolved by position:
// the earliest match wins, and the longest one when two start at the
// same offset. Text with nothing to link yields no matches.
//
// Find panics if f is not a valid configuration (see [Finder.Validate]).
func (f *Finder) Find(text string) []Match {
	if err := f.Validate(); err != nil {
		panic(err)
	}
	return f.find(nil, text)
}

// find appends the reconciled matches in text to dst.
// Offsets are relative to text.
func (f *Finder) find(dst []Match, text string) []Match {
	n := len(dst)
	for _, m := range f.matchers() {
		dst = m.appendMatches(dst, text)
	}
	kept := reconcile(dst[n:])
	return dst[:n+len(kept)]
}

// Find returns the matches of every kind in text, using the zero [Finder].
func Find(text string) []Match {
	var f Finder
	return f.find(nil, text)
}
