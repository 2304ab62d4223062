// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		if got := a.pad(s, w); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 5, "abc  ")
	check("abc", alignRight, 5, "  abc")
	check("±", alignRight, 3, "  ±")
	check("abc", alignLeft, 3, "abc")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var got strings.Builder
		if err := tab.Format(&got); err != nil {
			t.Fatal(err)
		}
		if want != got.String() {
			t.Errorf("want:\n%sgot:\n%s", want, got.String())
		}
		tab = Table{}
	}

	// Basic test.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a  b  c\nd  e  f\n")

	// Padding without trailing spaces.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a     b  c\nlong  e  long\n")

	// Right alignment.
	tab.Row().Cell("n").Cell("cost", Right)
	tab.Row().Cell("13").Cell("1.5", Right)
	check("n   cost\n13   1.5\n")

	// Short rows.
	tab.Row().Cell("a")
	tab.Row().Cell("d").Cell("e")
	check("a\nd  e\n")

	// Cell without Row.
	tab.Cell("x")
	check("x\n")

	// Empty table.
	check("")
}
