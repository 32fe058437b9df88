// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Linkify turns the URLs, email addresses, phone numbers, hashtags
// and mentions in HTML into links.
//
// Usage:
//
//	linkify [-json] [-md | -text] [flags] [file...]
//
// Linkify reads the named files, or else standard input, as HTML documents
// and prints them to standard output with their matches linked.
// Text inside existing links and inside <script>, <style> and <textarea>
// elements is copied unchanged.
//
// The -md flag reads Markdown instead, and prints the HTML it renders to.
// The -text flag reads plain text, escaping it as HTML before linking.
// The -json flag prints the matches, one JSON object per line,
// instead of the linked document.
//
// Flag defaults come from the environment, after loading a .env file
// from the current directory if there is one: AUTOLINK_KINDS,
// AUTOLINK_URL_TYPES, AUTOLINK_HASHTAG, AUTOLINK_MENTION, AUTOLINK_CLASS,
// AUTOLINK_NEW_WINDOW, AUTOLINK_KEEP_PREFIX, AUTOLINK_KEEP_TRAILING_SLASH,
// AUTOLINK_TRUNCATE and AUTOLINK_TRUNCATE_MIDDLE. AUTOLINK_CONFIG names a YAML file
// holding the same settings, which the variables override.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"

	"rsc.io/autolink"
	"rsc.io/autolink/goldlink"
)

var (
	jsonFlag = flag.Bool("json", false, "print matches as JSON")
	mdFlag   = flag.Bool("md", false, "read Markdown and print HTML")
	textFlag = flag.Bool("text", false, "read plain text")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: linkify [-json] [-md | -text] [flags] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}
	flag.StringVar(&cfg.Kinds, "kinds", cfg.Kinds, "comma-separated `kinds` to link (url,email,phone,hashtag,mention)")
	flag.StringVar(&cfg.URLTypes, "urltypes", cfg.URLTypes, "comma-separated URL `types` to link (scheme,www,tld)")
	flag.StringVar(&cfg.Hashtag, "hashtag", cfg.Hashtag, "`service` for hashtag links")
	flag.StringVar(&cfg.Mention, "mention", cfg.Mention, "`service` for mention links")
	flag.StringVar(&cfg.Class, "class", cfg.Class, "`class` attribute prefix for links")
	flag.BoolVar(&cfg.NewWindow, "newwindow", cfg.NewWindow, "open links in a new window")
	flag.BoolVar(&cfg.KeepPrefix, "keepprefix", cfg.KeepPrefix, "show http:// and www. in link text")
	flag.BoolVar(&cfg.KeepSlash, "keepslash", cfg.KeepSlash, "show a trailing slash in link text")
	flag.IntVar(&cfg.Truncate, "truncate", cfg.Truncate, "truncate link text to `n` characters")
	flag.BoolVar(&cfg.Middle, "middle", cfg.Middle, "truncate link text in the middle")
	flag.Usage = usage
	flag.Parse()
	if *mdFlag && *textFlag {
		usage()
	}

	l, err := cfg.linker()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		if err := do(os.Stdout, l, "stdin", os.Stdin); err != nil {
			slog.Error("linkify failed", "file", "stdin", "err", err)
			os.Exit(1)
		}
		return
	}
	for _, arg := range args {
		f, err := os.Open(arg)
		if err != nil {
			slog.Error("open failed", "err", err)
			os.Exit(1)
		}
		err = do(os.Stdout, l, arg, f)
		f.Close()
		if err != nil {
			slog.Error("linkify failed", "file", arg, "err", err)
			os.Exit(1)
		}
	}
}

// do links the document read from r and writes the result to w.
func do(w io.Writer, l *autolink.Linker, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	src := string(data)
	if *textFlag {
		src = html.EscapeString(src)
	}

	switch {
	case *mdFlag && *jsonFlag:
		return writeMatches(w, name, l.Finder.Find(src))
	case *mdFlag:
		var buf bytes.Buffer
		md := goldmark.New(goldmark.WithExtensions(goldlink.New(l.Finder)))
		if err := md.Convert(data, &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	case *jsonFlag:
		return writeMatches(w, name, l.FindHTML(src))
	}
	_, err = io.WriteString(w, l.Link(src))
	return err
}

// A jsonMatch is the JSON form of an autolink.Match.
type jsonMatch struct {
	File    string `json:"file"`
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Offset  int    `json:"offset"`
	URL     string `json:"url"`
	Type    string `json:"type,omitempty"`
	Service string `json:"service,omitempty"`
}

func writeMatches(w io.Writer, name string, matches []autolink.Match) error {
	enc := json.NewEncoder(w)
	for _, m := range matches {
		jm := jsonMatch{
			File:   name,
			Kind:   m.Kind.String(),
			Text:   m.Text,
			Offset: m.Offset,
			URL:    m.URL,
		}
		switch m.Kind {
		case autolink.URL:
			jm.Type = m.URLType.String()
		case autolink.Hashtag, autolink.Mention:
			jm.Service = m.Service.String()
		}
		if err := enc.Encode(jm); err != nil {
			return err
		}
	}
	return nil
}
