// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package autolink finds URLs, email addresses, phone numbers,
// hashtags and mentions in text and turns them into links.
//
// [Find] and [Finder.Find] return the matches in plain text as a list of
// [Match] values, sorted by offset, with no two matches overlapping.
// When matches of different kinds overlap, the one that starts first
// wins, and the longer one when both start at the same offset, so that
// "user@example.com" is an email address and not a URL with a mention.
//
// [Link] and [Linker.Link] rewrite an HTML document, replacing the
// matches in its text with <a> tags. Tags, existing links and the
// contents of <script>, <style> and <textarea> elements are copied
// unchanged. [Linker.FindHTML] and [Replace] split that rewrite into
// its two halves, for callers that want to build their own tags.
//
// URLs are found in three forms:
//
//	https://example.com/path   scheme URL
//	www.example.com            www URL
//	example.com                URL with a known-looking top-level domain
//
// A URL never ends in sentence punctuation, and a trailing ')' is
// kept only when it closes a '(' in the URL, so that
// "(see example.com/a_(b))" links "example.com/a_(b)".
//
// The scanners work on Unicode letters and digits, so
// "http://例え.テスト" and "#日本語" are matched too.
// Nothing is looked up on the network: a URL is a match
// because of its shape, not because its host exists.
package autolink
