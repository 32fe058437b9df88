// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goldlink

import (
	"bytes"
	"testing"

	"github.com/yuin/goldmark"

	"rsc.io/autolink"
)

var goldlinkTests = []struct {
	in  string
	out string
}{
	{
		"Visit example.com today",
		"<p>Visit <a href=\"http://example.com\">example.com</a> today</p>\n",
	},
	{
		"`example.com` and example.com",
		"<p><code>example.com</code> and <a href=\"http://example.com\">example.com</a></p>\n",
	},
	{
		"[example.com](http://x.org)",
		"<p><a href=\"http://x.org\">example.com</a></p>\n",
	},
	{
		"<http://example.com>",
		"<p><a href=\"http://example.com\">http://example.com</a></p>\n",
	},
	{
		"![example.com](x.png)",
		"<p><img src=\"x.png\" alt=\"example.com\"></p>\n",
	},
	{
		"hi @gopher",
		"<p>hi <a href=\"https://twitter.com/gopher\">@gopher</a></p>\n",
	},
	{
		"see example.com\nnext",
		"<p>see <a href=\"http://example.com\">example.com</a>\nnext</p>\n",
	},
	{
		"# Go at go.dev",
		"<h1>Go at <a href=\"http://go.dev\">go.dev</a></h1>\n",
	},
	{
		"    example.com",
		"<pre><code>example.com\n</code></pre>\n",
	},
}

func TestExtension(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(Extension))
	for _, tt := range goldlinkTests {
		var buf bytes.Buffer
		if err := md.Convert([]byte(tt.in), &buf); err != nil {
			t.Fatal(err)
		}
		if out := buf.String(); out != tt.out {
			t.Errorf("Convert(%q):\nhave %q\nwant %q", tt.in, out, tt.out)
		}
	}
}

func TestNew(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(New(autolink.Finder{Kinds: autolink.Kinds(autolink.Hashtag)})))
	var buf bytes.Buffer
	if err := md.Convert([]byte("#go at go.dev"), &buf); err != nil {
		t.Fatal(err)
	}
	want := "<p><a href=\"https://twitter.com/hashtag/go\">#go</a> at go.dev</p>\n"
	if out := buf.String(); out != want {
		t.Errorf("have %q\nwant %q", out, want)
	}
}

func TestNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New with unsupported service did not panic")
		}
	}()
	New(autolink.Finder{Mention: autolink.Facebook})
}
