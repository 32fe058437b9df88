// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import "testing"

var phoneTests = []findTest{
	{"(555) 555-5555", []string{
		`phone("(555) 555-5555")[0:14] tel:5555555555`,
	}},
	{"+1 555.555.5555", []string{
		`phone("+1 555.555.5555")[0:15] tel:+15555555555`,
	}},
	{"1-555-555-5555", []string{
		`phone("1-555-555-5555")[0:14] tel:15555555555`,
	}},
	{"call 555-555-5555 now", []string{
		`phone("555-555-5555")[5:17] tel:5555555555`,
	}},
	{"555 555 5555 or 555.555.5555", []string{
		`phone("555 555 5555")[0:12] tel:5555555555`,
		`phone("555.555.5555")[16:28] tel:5555555555`,
	}},
	{"555 5555555", nil},
	{"x555-555-5555", nil},
	{"555-555-5555x", nil},
	{"555-555-55555", nil},
	{"(555 555-5555", []string{
		`phone("555 555-5555")[1:13] tel:5555555555`,
	}},
	{"555) 555-5555", nil},
}

func TestPhone(t *testing.T) {
	testFind(t, &Finder{Kinds: Kinds(Phone)}, phoneTests)
}

func TestPhoneNumber(t *testing.T) {
	f := &Finder{Kinds: Kinds(Phone)}
	ms := f.Find("+44 555-555-5555")
	if len(ms) != 1 {
		t.Fatalf("Find = %v, want one match", ms)
	}
	if m := ms[0]; m.Number != "445555555555" || !m.PlusSign {
		t.Errorf("Number=%q PlusSign=%v, want 445555555555 true", m.Number, m.PlusSign)
	}
}
