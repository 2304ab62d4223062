// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialfmt

import (
	"fmt"
	"strings"
	"testing"
)

func parseAll(t *testing.T, data string, labels ...string) []string {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test", labels...)
	var out []string
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *Line:
			_, line := rec.Pos()
			out = append(out, fmt.Sprintf("%d %s=%d", line, rec.Label, rec.Value))
		case *SyntaxError:
			out = append(out, "SyntaxError: "+rec.Error())
		default:
			t.Fatalf("unexpected record type %T", rec)
		}
	}
	if err := r.Err(); err != nil {
		t.Fatal("reading failed: ", err)
	}
	return out
}

func TestReader(t *testing.T) {
	labels := []string{"fi_prep", "fd_prep", "online", "atlas_prep", "atlas_online", "dn07_prep"}
	for _, test := range []struct {
		name, input string
		want        []string
	}{
		{
			"basic",
			"fi_prep: 1000000 us\nfd_prep: 2000000 us\nonline: 3000000 us\n",
			[]string{"1 fi_prep=1000000", "2 fd_prep=2000000", "3 online=3000000"},
		},
		{
			"noise",
			`========================================
Running benchmark with N 13, size 1000, width 100 and depth 10
========================================
Connecting ...
Done!
fi_prep SEND
fi_prep RECV
fi_prep: 4242 us
`,
			[]string{"8 fi_prep=4242"},
		},
		{
			// A substring search for "online:" would also
			// match the baseline's online timer.
			"prefix only",
			"atlas_online: 7 us\nonline: 9 us\n",
			[]string{"1 atlas_online=7", "2 online=9"},
		},
		{
			// Digit filtering would read "0712".
			"digits in label",
			"dn07_prep: 12 us\n",
			[]string{"1 dn07_prep=12"},
		},
		{
			"no unit",
			"online:15\n",
			[]string{"1 online=15"},
		},
		{
			"leading space",
			"  \tonline: 15 us\n",
			[]string{"1 online=15"},
		},
		{
			"negative",
			"online: -15 us\n",
			[]string{"1 online=-15"},
		},
		{
			"unknown label",
			"dn07_online: 3 us\nbogus: 5\n",
			nil,
		},
		{
			"malformed",
			"online: 12.5 us\nonline:\nfd_prep: x1 us\nonline: 4 us\n",
			[]string{
				`SyntaxError: test:1: online: parsing value "12.5": invalid syntax`,
				"SyntaxError: test:2: online: missing value",
				`SyntaxError: test:3: fd_prep: parsing value "x1": invalid syntax`,
				"4 online=4",
			},
		},
		{
			"out of range",
			"online: 99999999999999999999 us\n",
			[]string{`SyntaxError: test:1: online: parsing value "99999999999999999999": value out of range`},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := parseAll(t, test.input, labels...)
			if strings.Join(got, "\n") != strings.Join(test.want, "\n") {
				t.Errorf("want:\n%s\ngot:\n%s", strings.Join(test.want, "\n"), strings.Join(got, "\n"))
			}
		})
	}
}

func TestReaderReset(t *testing.T) {
	r := NewReader(strings.NewReader("online: 1 us\n"), "a", "online")
	if !r.Scan() {
		t.Fatal("no record in first input")
	}
	r.Reset(strings.NewReader("online: 2 us\nfi_prep: 3 us\n"), "b", "fi_prep")
	if !r.Scan() {
		t.Fatal("no record in second input")
	}
	l, ok := r.Result().(*Line)
	if !ok {
		t.Fatalf("want *Line, got %T", r.Result())
	}
	if file, line := l.Pos(); file != "b" || line != 2 || l.Label != "fi_prep" || l.Value != 3 {
		t.Errorf("want b:2 fi_prep=3, got %s:%d %s=%d", file, line, l.Label, l.Value)
	}
	if r.Scan() {
		t.Errorf("unexpected record %v", r.Result())
	}
}

func TestResultBeforeScan(t *testing.T) {
	r := NewReader(strings.NewReader(""), "", "online")
	if _, ok := r.Result().(*SyntaxError); !ok {
		t.Errorf("want *SyntaxError before Scan, got %T", r.Result())
	}
}
