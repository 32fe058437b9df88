// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// A Kind is the kind of text a [Match] describes.
type Kind uint8

const (
	URL Kind = iota
	Email
	Phone
	Hashtag
	Mention

	numKinds
)

var kindNames = [...]string{
	URL:     "url",
	Email:   "email",
	Phone:   "phone",
	Hashtag: "hashtag",
	Mention: "mention",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// A KindSet is a set of kinds.
// The zero KindSet means every kind.
type KindSet uint8

// AllKinds is the set of every kind.
const AllKinds = KindSet(1<<numKinds - 1)

// Kinds returns the set holding exactly the kinds ks.
func Kinds(ks ...Kind) KindSet {
	var set KindSet
	for _, k := range ks {
		set |= 1 << k
	}
	return set
}

// Has reports whether the set includes k.
// The zero set includes every kind.
func (set KindSet) Has(k Kind) bool {
	if set == 0 {
		set = AllKinds
	}
	return k < numKinds && set&(1<<k) != 0
}

func (set KindSet) String() string {
	if set == 0 {
		set = AllKinds
	}
	var names []string
	for k := Kind(0); k < numKinds; k++ {
		if set.Has(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, ",")
}

// ParseKinds parses a comma-separated list of kind names, such as "url,email".
// Names are matched without regard to case.
// The empty string and "all" parse as [AllKinds].
func ParseKinds(list string) (KindSet, error) {
	fold := cases.Fold()
	var set KindSet
	for _, name := range strings.Split(list, ",") {
		name = fold.String(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "all" {
			set |= AllKinds
			continue
		}
		found := false
		for k, kn := range kindNames {
			if kn == name {
				set |= 1 << k
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("parse kinds: %w: %q", ErrUnknownKind, name)
		}
	}
	if set == 0 {
		set = AllKinds
	}
	return set, nil
}

// A URLType says how a URL match was recognized.
type URLType uint8

const (
	SchemeURL URLType = 1 + iota // "http://example.com", "xmpp:me@example.com"
	WWWURL                       // "www.example.com"
	TLDURL                       // "example.com"
)

var urlTypeNames = [...]string{
	SchemeURL: "scheme",
	WWWURL:    "www",
	TLDURL:    "tld",
}

func (t URLType) String() string {
	if t >= SchemeURL && int(t) < len(urlTypeNames) {
		return urlTypeNames[t]
	}
	return fmt.Sprintf("URLType(%d)", t)
}

// A URLTypeSet is a set of URL types.
// The zero URLTypeSet means every type.
type URLTypeSet uint8

// URLTypes returns the set holding exactly the types ts.
func URLTypes(ts ...URLType) URLTypeSet {
	var set URLTypeSet
	for _, t := range ts {
		set |= 1 << t
	}
	return set
}

// Has reports whether the set includes t.
func (set URLTypeSet) Has(t URLType) bool {
	return set == 0 || set&(1<<t) != 0
}

// ParseURLTypes parses a comma-separated list of URL type names,
// such as "scheme,www". Names are matched without regard to case.
// The empty list parses as the zero set, meaning every type.
func ParseURLTypes(list string) (URLTypeSet, error) {
	fold := cases.Fold()
	var set URLTypeSet
	for _, name := range strings.Split(list, ",") {
		name = fold.String(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		t := slices.Index(urlTypeNames[:], name)
		if t < int(SchemeURL) {
			return 0, fmt.Errorf("parse URL types: %w: %q", ErrUnknownURLType, name)
		}
		set |= 1 << t
	}
	return set, nil
}

// A Service names the site that hashtag and mention links point at.
// The zero Service means [Twitter].
type Service uint8

const (
	Twitter Service = 1 + iota
	Facebook
	Instagram
	SoundCloud
	TikTok

	numServices
)

var serviceNames = [...]string{
	Twitter:    "twitter",
	Facebook:   "facebook",
	Instagram:  "instagram",
	SoundCloud: "soundcloud",
	TikTok:     "tiktok",
}

func (svc Service) String() string {
	if svc == 0 {
		svc = Twitter
	}
	if svc < numServices {
		return serviceNames[svc]
	}
	return fmt.Sprintf("Service(%d)", svc)
}

// ParseService returns the service with the given name, ignoring case.
func ParseService(name string) (Service, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	for svc, sn := range serviceNames {
		if sn != "" && sn == folded {
			return Service(svc), nil
		}
	}
	return 0, fmt.Errorf("parse service: %w: %q", ErrUnknownService, name)
}

// A Match describes one linkable piece of the scanned text.
//
// The text covered by a match is always a verbatim slice of the input:
// s[m.Offset:m.End()] == m.Text.
type Match struct {
	Kind   Kind
	Text   string // matched text
	Offset int    // byte offset of Text in the scanned string
	URL    string // link target (href)

	URLType          URLType // how a URL was recognized
	ProtocolRelative bool    // URL text begins with "//"

	Number   string // phone number digits
	PlusSign bool   // phone number began with "+"

	Service Service // hashtag or mention service
	Name    string  // hashtag or user name, without the leading # or @
}

// End returns the byte offset just past the match.
func (m Match) End() int {
	return m.Offset + len(m.Text)
}

// String returns a debug representation, e.g. url("asdf.com")[6:14].
func (m Match) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", m.Kind, m.Text, m.Offset, m.End())
}
