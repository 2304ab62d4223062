// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatPower(t *testing.T) {
	for _, test := range []struct {
		v    int
		want string
	}{
		{10, "10"},
		{100, "100"},
		{999, "999"},
		{1000, "1k"},
		{10000, "10k"},
		{100000, "100k"},
		{1000000, "1M"},
	} {
		got, err := FormatPower(test.v)
		if err != nil || got != test.want {
			t.Errorf("FormatPower(%d) = %q, %v; want %q", test.v, got, err, test.want)
		}
	}
	for _, v := range []int{123456, 2000, 10000000} {
		if _, err := FormatPower(v); !errors.Is(err, ErrMagnitude) {
			t.Errorf("FormatPower(%d): want ErrMagnitude, got %v", v, err)
		}
	}
}

func TestDefaultGrid(t *testing.T) {
	g, err := DefaultGrid(3, 4, DefaultParties)
	if err != nil {
		t.Fatal(err)
	}
	want := Grid{
		Dims: []int{10, 100, 1000},
		Sizes: map[int][]int{
			10:   {1000, 10000},
			100:  {1000, 10000},
			1000: {10000},
		},
		Parties: []int{13, 21, 29, 37, 45},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	if err := g.Validate(); err != nil {
		t.Error(err)
	}
}

func TestDefaultGridErrors(t *testing.T) {
	for _, test := range []struct {
		dMax, sMax int
		parties    []int
	}{
		{3, 3, DefaultParties},
		{0, 4, DefaultParties},
		{1, 4, nil},
	} {
		if _, err := DefaultGrid(test.dMax, test.sMax, test.parties); err == nil {
			t.Errorf("DefaultGrid(%d, %d, %v): want error", test.dMax, test.sMax, test.parties)
		}
	}
}

func TestGridValidate(t *testing.T) {
	g, err := DefaultGrid(2, 7, DefaultParties)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); !errors.Is(err, ErrMagnitude) {
		t.Errorf("want ErrMagnitude for size 10^7, got %v", err)
	}
}
