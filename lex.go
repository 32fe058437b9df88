// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// isSchemeByte reports whether c can appear after the first letter of a URL scheme.
func isSchemeByte(c byte) bool {
	return isLetterDigit(c) || c == '+' || c == '.' || c == '-'
}

// isAlnum reports whether r is a Unicode letter, combining mark, or digit.
// This is the "alphanumeric" class every scanner builds on.
func isAlnum(r rune) bool {
	if r < utf8.RuneSelf {
		return isLetterDigit(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

// isWordRune reports whether r is alphanumeric or an underscore.
func isWordRune(r rune) bool {
	return r == '_' || isAlnum(r)
}

// isDomainRune reports whether r can appear in a host name.
func isDomainRune(r rune) bool {
	return r == '-' || r == '.' || isAlnum(r)
}

// isURLSuffixRune reports whether r can appear in the path, query,
// or fragment that follows a host.
func isURLSuffixRune(r rune) bool {
	return isAlnum(r) || r < utf8.RuneSelf && strings.IndexByte(`-+&@#/%=~_()|'$*[]?!:,.;`, byte(r)) >= 0
}

// isLocalPartRune reports whether r can appear in the local part
// of an email address, not counting dots.
func isLocalPartRune(r rune) bool {
	return isAlnum(r) || r < utf8.RuneSelf && strings.IndexByte("!#$%&'*+-/=?^_`{|}~", byte(r)) >= 0
}

// isPhoneSep reports whether c separates digit groups in a phone number.
func isPhoneSep(c byte) bool {
	return c == '-' || c == ' ' || c == '.'
}

// runeBefore returns the rune ending at s[i], or -1 if i == 0.
func runeBefore(s string, i int) rune {
	if i <= 0 {
		return -1
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

// runeAt returns the rune starting at s[i] and its width,
// or -1 and 0 if i == len(s).
func runeAt(s string, i int) (rune, int) {
	if i >= len(s) {
		return -1, 0
	}
	return utf8.DecodeRuneInString(s[i:])
}

// hasPrefixFold reports whether s begins with prefix,
// ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// digitsAt reports whether s[i:i+n] is n ASCII digits.
func digitsAt(s string, i, n int) bool {
	if i < 0 || i+n > len(s) {
		return false
	}
	for _, c := range []byte(s[i : i+n]) {
		if !isDigit(c) {
			return false
		}
	}
	return true
}
