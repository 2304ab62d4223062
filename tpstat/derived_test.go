// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tpstat

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRatio(t *testing.T) {
	for _, test := range []struct {
		a, b   float64
		want   float64
		wantOK bool
	}{
		{3, 6, 0.5, true},
		{0, 1, 0, true},
		{5, 0, 0, false},
		{0, 0, 0, false},
	} {
		got, ok := Ratio(test.a, test.b)
		if got != test.want || ok != test.wantOK {
			t.Errorf("Ratio(%v, %v) = %v, %v; want %v, %v", test.a, test.b, got, ok, test.want, test.wantOK)
		}
	}
}

func TestComputeDerivedAtlas(t *testing.T) {
	v := Variants["atlas"]
	m := &Metrics{Trials: 1, Values: map[string]float64{
		"fi_prep": 1, "fd_prep": 2, "online": 3,
		"atlas_prep": 6, "atlas_online": 2,
	}}
	got := ComputeDerived(v, m)
	want := Derived{
		FD:      Costs{3, 3},
		FI:      Costs{1, 5},
		BaseFD:  Costs{6, 2},
		BaseFI:  Costs{6, 2},
		RatioFD: Costs{0.5, 1.5},
		RatioFI: Costs{1.0 / 6, 2.5},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("derived mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeDerivedDN07(t *testing.T) {
	v := Variants["dn07"]
	m := &Metrics{Trials: 3, Values: map[string]float64{
		"fi_prep": 1, "fd_prep": 2, "online": 3,
		"dn07_prep": 4, "dn07_fd": 4, "dn07_online": 2,
	}}
	got := ComputeDerived(v, m)
	want := Derived{
		FD:      Costs{3, 3},
		FI:      Costs{1, 5},
		BaseFD:  Costs{8, 2},
		BaseFI:  Costs{4, 6},
		RatioFD: Costs{3.0 / 8, 1.5},
		RatioFI: Costs{0.25, 5.0 / 6},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("derived mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeDerivedZeroBaseline(t *testing.T) {
	// The baseline never logged its online timer.
	v := Variants["atlas"]
	m := &Metrics{Trials: 2, Values: map[string]float64{
		"fi_prep": 1, "fd_prep": 2, "online": 3,
		"atlas_prep": 6, "atlas_online": 0,
	}}
	d := ComputeDerived(v, m)
	if d.RatioFD.Offline != 0.5 {
		t.Errorf("offline ratio: want 0.5, got %v", d.RatioFD.Offline)
	}
	if !math.IsNaN(d.RatioFD.Online) || !math.IsNaN(d.RatioFI.Online) {
		t.Errorf("online ratios: want NaN, got %v and %v", d.RatioFD.Online, d.RatioFI.Online)
	}
}
