// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package goldlink is a goldmark extension that links the URLs,
// email addresses, phone numbers, hashtags and mentions in the
// text of a Markdown document.
//
// Text inside links, autolinks, code spans, images and raw HTML
// is left alone.
//
//	md := goldmark.New(goldmark.WithExtensions(goldlink.Extension))
package goldlink

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"rsc.io/autolink"
)

// transformerPriority runs the transformer after goldmark's own.
const transformerPriority = 999

// An Extender links text with its Finder.
type Extender struct {
	Finder autolink.Finder
}

// Extension links every kind of match, using the zero [autolink.Finder].
var Extension = &Extender{}

// New returns an Extender that links the matches of f.
// It panics if f is not a valid configuration.
func New(f autolink.Finder) *Extender {
	if err := f.Validate(); err != nil {
		panic(err)
	}
	return &Extender{Finder: f}
}

// Extend implements goldmark.Extender.
func (e *Extender) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(&transformer{finder: e.Finder}, transformerPriority),
		),
	)
}

type transformer struct {
	finder autolink.Finder
}

// Transform implements parser.ASTTransformer.
func (t *transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	// Collect first, then rewrite the tree.
	var runs [][]*ast.Text
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindLink, ast.KindAutoLink, ast.KindCodeSpan, ast.KindImage, ast.KindRawHTML:
			return ast.WalkSkipChildren, nil
		}
		runs = appendRuns(runs, n)
		return ast.WalkContinue, nil
	})

	for _, run := range runs {
		t.link(source, run)
	}
}

// appendRuns appends the runs of text among the children of n.
// A run is a sequence of adjacent text nodes covering one contiguous
// piece of source, ending at a line break.
// Goldmark splits text at punctuation that might start inline syntax,
// so a single URL can span several nodes.
func appendRuns(runs [][]*ast.Text, n ast.Node) [][]*ast.Text {
	var run []*ast.Text
	flush := func() {
		if len(run) > 0 {
			runs = append(runs, run)
			run = nil
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok || t.IsRaw() {
			flush()
			continue
		}
		if len(run) > 0 && run[len(run)-1].Segment.Stop != t.Segment.Start {
			flush()
		}
		run = append(run, t)
		if t.SoftLineBreak() || t.HardLineBreak() {
			flush()
		}
	}
	flush()
	return runs
}

// link replaces the nodes of run with text and link nodes
// if the text they cover has matches.
func (t *transformer) link(source []byte, run []*ast.Text) {
	first, last := run[0], run[len(run)-1]
	start, stop := first.Segment.Start, last.Segment.Stop
	matches := t.finder.Find(string(source[start:stop]))
	if len(matches) == 0 {
		return
	}

	parent := first.Parent()
	pos := start
	for _, m := range matches {
		mstart, mend := start+m.Offset, start+m.End()
		if pos < mstart {
			parent.InsertBefore(parent, first, ast.NewTextSegment(text.NewSegment(pos, mstart)))
		}
		link := ast.NewLink()
		link.Destination = []byte(m.URL)
		link.AppendChild(link, ast.NewTextSegment(text.NewSegment(mstart, mend)))
		parent.InsertBefore(parent, first, link)
		pos = mend
	}

	// The tail carries the run's line break, even when empty.
	if pos < stop || last.SoftLineBreak() || last.HardLineBreak() {
		tail := ast.NewTextSegment(text.NewSegment(pos, stop))
		tail.SetSoftLineBreak(last.SoftLineBreak())
		tail.SetHardLineBreak(last.HardLineBreak())
		parent.InsertBefore(parent, first, tail)
	}
	for _, n := range run {
		parent.RemoveChild(parent, n)
	}
}
