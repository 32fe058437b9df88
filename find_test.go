// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// describe returns a comparable summary of each match: its debug form and its href.
func describe(ms []Match) []string {
	var out []string
	for _, m := range ms {
		out = append(out, m.String()+" "+m.URL)
	}
	return out
}

// A findTest is a test case for Finder.Find.
type findTest struct {
	in   string
	want []string
}

func testFind(t *testing.T, f *Finder, tests []findTest) {
	t.Helper()
	for _, tt := range tests {
		got := describe(f.Find(tt.in))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Find(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

var findTests = []findTest{
	{"", nil},
	{"nothing to see here", nil},
	{"asdf@asdf.com", []string{
		`email("asdf@asdf.com")[0:13] mailto:asdf@asdf.com`,
	}},
	{"me@gopher.com", []string{
		`email("me@gopher.com")[0:13] mailto:me@gopher.com`,
	}},
	{"Visit example.com or mail me@example.com", []string{
		`url("example.com")[6:17] http://example.com`,
		`email("me@example.com")[26:40] mailto:me@example.com`,
	}},
	{"@gopher #go (555) 555-5555 http://go.dev", []string{
		`mention("@gopher")[0:7] https://twitter.com/gopher`,
		`hashtag("#go")[8:11] https://twitter.com/hashtag/go`,
		`phone("(555) 555-5555")[12:26] tel:5555555555`,
		`url("http://go.dev")[27:40] http://go.dev`,
	}},
	// A hashtag or mention inside a URL belongs to the URL.
	{"http://example.com/#tag", []string{
		`url("http://example.com/#tag")[0:23] http://example.com/#tag`,
	}},
	{"http://example.com/@user", []string{
		`url("http://example.com/@user")[0:24] http://example.com/@user`,
	}},
	{"mailto:asdf@asdf.com", []string{
		`email("mailto:asdf@asdf.com")[0:20] mailto:asdf@asdf.com`,
	}},
}

func TestFind(t *testing.T) {
	testFind(t, &Finder{}, findTests)

	for _, tt := range findTests {
		got := describe(Find(tt.in))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("package Find(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestFindKinds(t *testing.T) {
	const in = "@gopher #go (555) 555-5555 http://go.dev me@example.com"
	for k := Kind(0); k < numKinds; k++ {
		f := &Finder{Kinds: Kinds(k)}
		ms := f.Find(in)
		if len(ms) != 1 {
			t.Errorf("Find with Kinds=%v: got %v, want one match", f.Kinds, ms)
			continue
		}
		if ms[0].Kind != k {
			t.Errorf("Find with Kinds=%v: got %v", f.Kinds, ms[0])
		}
	}
}

func TestFindURLTypes(t *testing.T) {
	const in = "http://a.org www.b.org c.org"
	tests := []struct {
		types URLTypeSet
		want  []string
	}{
		{0, []string{"http://a.org", "www.b.org", "c.org"}},
		{URLTypes(SchemeURL), []string{"http://a.org"}},
		{URLTypes(WWWURL, TLDURL), []string{"www.b.org", "c.org"}},
	}
	for _, tt := range tests {
		f := &Finder{Kinds: Kinds(URL), URLTypes: tt.types}
		var got []string
		for _, m := range f.Find(in) {
			got = append(got, m.Text)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("URLTypes=%#x mismatch (-want +got):\n%s", uint8(tt.types), diff)
		}
	}
}

func TestFinderValidate(t *testing.T) {
	tests := []struct {
		f    Finder
		want error
	}{
		{Finder{}, nil},
		{Finder{Kinds: Kinds(URL, Email)}, nil},
		{Finder{Kinds: 1 << 7}, ErrUnknownKind},
		{Finder{URLTypes: 1 << 6}, ErrUnknownURLType},
		{Finder{Hashtag: 42}, ErrUnknownService},
		{Finder{Mention: numServices}, ErrUnknownService},
		{Finder{Hashtag: SoundCloud}, ErrUnsupportedService},
		{Finder{Mention: Facebook}, ErrUnsupportedService},
		// Unsupported services are fine for kinds that are not found.
		{Finder{Kinds: Kinds(URL), Hashtag: SoundCloud, Mention: Facebook}, nil},
	}
	for _, tt := range tests {
		err := tt.f.Validate()
		if !errors.Is(err, tt.want) || (err == nil) != (tt.want == nil) {
			t.Errorf("%+v.Validate() = %v, want %v", tt.f, err, tt.want)
		}
	}
}

func TestFindPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrUnsupportedService) {
			t.Errorf("recover() = %v, want ErrUnsupportedService", err)
		}
	}()
	f := &Finder{Mention: Facebook}
	f.Find("@gopher")
}

func TestFindOffsets(t *testing.T) {
	in := strings.Repeat("x ", 100) + "ünïcødé example.com #tag @name a@b.co"
	for _, m := range Find(in) {
		if in[m.Offset:m.End()] != m.Text {
			t.Errorf("%v: text does not match input %q", m, in[m.Offset:m.End()])
		}
	}
}
