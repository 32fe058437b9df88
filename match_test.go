// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"errors"
	"testing"
)

func TestParseKinds(t *testing.T) {
	tests := []struct {
		in   string
		want KindSet
		err  error
	}{
		{"", AllKinds, nil},
		{"all", AllKinds, nil},
		{"url", Kinds(URL), nil},
		{"URL, Email", Kinds(URL, Email), nil},
		{"hashtag,mention,", Kinds(Hashtag, Mention), nil},
		{"url,link", 0, ErrUnknownKind},
	}
	for _, tt := range tests {
		got, err := ParseKinds(tt.in)
		if got != tt.want || !errors.Is(err, tt.err) {
			t.Errorf("ParseKinds(%q) = %v, %v, want %v, %v", tt.in, got, err, tt.want, tt.err)
		}
	}
}

func TestKindSetString(t *testing.T) {
	tests := []struct {
		set  KindSet
		want string
	}{
		{0, "url,email,phone,hashtag,mention"},
		{Kinds(Email, URL), "url,email"},
		{Kinds(Mention), "mention"},
	}
	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("KindSet(%#x).String() = %q, want %q", uint8(tt.set), got, tt.want)
		}
	}
}

func TestParseURLTypes(t *testing.T) {
	tests := []struct {
		in   string
		want URLTypeSet
		err  error
	}{
		{"", 0, nil},
		{"scheme", URLTypes(SchemeURL), nil},
		{"WWW,tld", URLTypes(WWWURL, TLDURL), nil},
		{"ftp", 0, ErrUnknownURLType},
	}
	for _, tt := range tests {
		got, err := ParseURLTypes(tt.in)
		if got != tt.want || !errors.Is(err, tt.err) {
			t.Errorf("ParseURLTypes(%q) = %#x, %v, want %#x, %v", tt.in, uint8(got), err, uint8(tt.want), tt.err)
		}
	}
}

func TestParseService(t *testing.T) {
	for svc := Twitter; svc < numServices; svc++ {
		got, err := ParseService(svc.String())
		if got != svc || err != nil {
			t.Errorf("ParseService(%q) = %v, %v, want %v, nil", svc.String(), got, err, svc)
		}
	}
	if got, err := ParseService("TikTok"); got != TikTok || err != nil {
		t.Errorf("ParseService(TikTok) = %v, %v, want tiktok, nil", got, err)
	}
	if _, err := ParseService("myspace"); !errors.Is(err, ErrUnknownService) {
		t.Errorf("ParseService(myspace) error = %v, want ErrUnknownService", err)
	}
}

func TestMatchString(t *testing.T) {
	m := Match{Kind: URL, Text: "asdf.com", Offset: 6}
	if got, want := m.String(), `url("asdf.com")[6:14]`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := m.End(); got != 14 {
		t.Errorf("End() = %d, want 14", got)
	}
}
