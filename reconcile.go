// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"cmp"
	"slices"
)

// reconcile merges the matches of every kind into one sequence
// sorted by offset with no overlaps, reusing the storage of matches.
//
// Matches are ordered by offset, longer first at the same offset.
// A sweep from left to right then keeps each match that starts at or
// after the end of the last kept match and drops the rest entirely.
// The sort is stable, so among matches with the same offset and
// length the one collected first (lower Kind) wins.
func reconcile(matches []Match) []Match {
	if len(matches) <= 1 {
		return matches
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(a.Offset, b.Offset); c != 0 {
			return c
		}
		return cmp.Compare(len(b.Text), len(a.Text))
	})

	out := matches[:0]
	end := 0
	for _, m := range matches {
		if m.Offset >= end {
			out = append(out, m)
			end = m.End()
		}
	}
	return out
}
